package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rentsmart-service/internal/domain/auth"
	"rentsmart-service/internal/domain/fleet"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, zap.NewNop()), mr
}

func TestInit_SeedsEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 3)
	assert.Equal(t, "v001", vehicles[0].ID)
	assert.Equal(t, fleet.VehicleAvailable, vehicles[0].Status)

	customers, err := store.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	contracts, err := store.Contracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	assert.Equal(t, fleet.ContractCompleted, contracts[0].Status)
}

// A second Init must not clobber data written after the first.
func TestInit_DoesNotOverwriteExistingData(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	vehicles = vehicles[:1]
	vehicles[0].CurrentMileage = 99999
	require.NoError(t, store.SaveVehicles(ctx, vehicles))

	require.NoError(t, store.Init(ctx))

	after, err := store.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, 99999, after[0].CurrentMileage)
}

func TestSaveVehicles_ReplacesWholeCollection(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))

	one := []fleet.Vehicle{{ID: "v999", Make: "Tesla", Model: "Model 3", Year: 2024,
		Status: fleet.VehicleAvailable, PurchaseDate: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)}}
	require.NoError(t, store.SaveVehicles(ctx, one))

	got, err := store.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v999", got[0].ID)
	assert.True(t, got[0].PurchaseDate.Equal(one[0].PurchaseDate))
}

func TestContracts_RoundTripPreservesOptionalFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))

	contracts, err := store.Contracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 2)

	completed := contracts[0]
	require.NotNil(t, completed.MileageIn)
	assert.Equal(t, 9800, *completed.MileageIn)
	require.NotNil(t, completed.FuelIn)
	assert.Equal(t, "full", *completed.FuelIn)

	active := contracts[1]
	assert.Nil(t, active.MileageIn)
	assert.Nil(t, active.FuelIn)
}

func TestSettings_AbsentIsNil(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	blob, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, store.SaveSettings(ctx, []byte(`{"theme":"dark"}`)))
	blob, err = store.Settings(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(blob))
}

func TestSheetsConfig_KeysAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSheetsAPIKey(ctx, "api-key-123"))

	key, err := store.SheetsAPIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "api-key-123", key)

	id, err := store.SheetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestSessions_PutGetDelete(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	user := auth.User{ID: "user2", Email: "manager@example.com", Role: auth.RoleManager}
	require.NoError(t, store.PutSession(ctx, "jti-1", user, time.Hour))

	got, err := store.Session(ctx, "jti-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, auth.RoleManager, got.Role)

	require.NoError(t, store.DeleteSession(ctx, "jti-1"))
	got, err = store.Session(ctx, "jti-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Expiry behaves like deletion.
	require.NoError(t, store.PutSession(ctx, "jti-2", user, time.Minute))
	mr.FastForward(2 * time.Minute)
	got, err = store.Session(ctx, "jti-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}
