package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/tabular"
	"rentsmart-service/internal/repository/redisstore"
)

func newConfiguredStore(t *testing.T) *redisstore.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := redisstore.NewStore(rdb, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, store.SetSheetsAPIKey(ctx, "test-key"))
	require.NoError(t, store.SetSheetID(ctx, "sheet-42"))
	return store
}

func sampleRecords() []*tabular.Record {
	return []*tabular.Record{
		tabular.NewRecord().Set("id", "v001").Set("mileage", 9800.0),
		tabular.NewRecord().Set("id", "v002").Set("mileage", 20400.0),
	}
}

func TestPush_ClearsThenWrites(t *testing.T) {
	var calls []string
	var updateBody map[string][][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if r.Method == http.MethodPut {
			assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&updateBody))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop(), WithBaseURL(srv.URL))
	require.NoError(t, svc.Push(context.Background(), "Vehicles", sampleRecords()))

	require.Len(t, calls, 2)
	assert.True(t, strings.HasSuffix(calls[0], ":clear"), "first request should clear: %s", calls[0])
	assert.True(t, strings.HasPrefix(calls[1], "PUT "), "second request should write: %s", calls[1])

	values := updateBody["values"]
	require.Len(t, values, 3)
	assert.Equal(t, []string{"id", "mileage"}, values[0])
	assert.Equal(t, []string{"v001", "9800"}, values[1])
}

func TestPush_EmptyRecords(t *testing.T) {
	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop())
	err := svc.Push(context.Background(), "Vehicles", nil)
	assert.ErrorIs(t, err, xerrors.ErrInsufficientData)
}

func TestPush_ConfigMissing(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	store := redisstore.NewStore(rdb, zap.NewNop())
	require.NoError(t, store.SetSheetsAPIKey(context.Background(), "key-only"))

	svc := NewSheetsService(store, zap.NewNop())
	err := svc.Push(context.Background(), "Vehicles", sampleRecords())
	assert.ErrorIs(t, err, xerrors.ErrSheetsConfigMissing)
}

func TestPush_WriteFailureAfterClear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop(), WithBaseURL(srv.URL))
	err := svc.Push(context.Background(), "Vehicles", sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update sheet")
}

func TestPull_CoercesCells(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		json.NewEncoder(w).Encode(map[string]any{
			"range": "Vehicles!A1:Z1000",
			"values": [][]any{
				{"id", "mileage", "active"},
				{"v001", "9800", "true"},
				{"v002", "not-a-number", "false"},
			},
		})
	}))
	defer srv.Close()

	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop(), WithBaseURL(srv.URL))
	records, err := svc.Pull(context.Background(), "Vehicles")
	require.NoError(t, err)
	require.Len(t, records, 2)

	mileage, _ := records[0].Get("mileage")
	assert.Equal(t, 9800.0, mileage)
	active, _ := records[0].Get("active")
	assert.Equal(t, true, active)
	raw, _ := records[1].Get("mileage")
	assert.Equal(t, "not-a-number", raw)
}

// Short rows are padded with empty cells to the header width.
func TestPull_PadsShortRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"values": [][]any{
				{"id", "name", "note"},
				{"v001", "Camry"},
			},
		})
	}))
	defer srv.Close()

	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop(), WithBaseURL(srv.URL))
	records, err := svc.Pull(context.Background(), "Vehicles")
	require.NoError(t, err)
	require.Len(t, records, 1)

	note, ok := records[0].Get("note")
	require.True(t, ok)
	assert.Equal(t, "", note)
}

func TestPull_HeaderOnlyIsNeutral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"values": [][]any{{"id", "name"}},
		})
	}))
	defer srv.Close()

	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop(), WithBaseURL(srv.URL))
	records, err := svc.Pull(context.Background(), "Vehicles")
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestPull_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewSheetsService(newConfiguredStore(t), zap.NewNop(), WithBaseURL(srv.URL))
	_, err := svc.Pull(context.Background(), "Vehicles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 403")
}
