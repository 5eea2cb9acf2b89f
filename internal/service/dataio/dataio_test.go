package dataio

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
	"rentsmart-service/internal/repository/redisstore"
	"rentsmart-service/internal/service/sheets"
)

func newDataService(t *testing.T, sheetOpts ...sheets.Option) (*DataService, *redisstore.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := redisstore.NewStore(rdb, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.SetSheetsAPIKey(ctx, "test-key"))
	require.NoError(t, store.SetSheetID(ctx, "sheet-42"))

	sheetSvc := sheets.NewSheetsService(store, zap.NewNop(), sheetOpts...)
	return NewDataService(store, sheetSvc, zap.NewNop()), store
}

func TestExportCSV_VehicleColumns(t *testing.T) {
	svc, _ := newDataService(t)

	name, data, err := svc.ExportCSV(context.Background(), CollectionVehicles)
	require.NoError(t, err)
	assert.Equal(t, "vehicles.csv", name)

	lines := strings.Split(string(data), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "id,make,model,year"), "header: %s", lines[0])
	assert.Contains(t, lines[1], `"v001"`)
	assert.Contains(t, lines[1], `"Toyota"`)
}

// Exported CSV imports back into an equivalent collection.
func TestImportCSV_RoundTrip(t *testing.T) {
	svc, store := newDataService(t)
	ctx := context.Background()

	before, err := store.Contracts(ctx)
	require.NoError(t, err)

	_, data, err := svc.ExportCSV(ctx, CollectionContracts)
	require.NoError(t, err)

	count, err := svc.ImportCSV(ctx, CollectionContracts, data)
	require.NoError(t, err)
	assert.Equal(t, len(before), count)

	after, err := store.Contracts(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Status, after[i].Status)
		assert.Equal(t, before[i].TotalAmount, after[i].TotalAmount)
		assert.True(t, before[i].StartDate.Equal(after[i].StartDate))
		if before[i].MileageIn == nil {
			assert.Nil(t, after[i].MileageIn)
		} else {
			require.NotNil(t, after[i].MileageIn)
			assert.Equal(t, *before[i].MileageIn, *after[i].MileageIn)
		}
	}
}

// A malformed record aborts the import before anything is written.
func TestImportCSV_MalformedLeavesStoreUntouched(t *testing.T) {
	svc, store := newDataService(t)
	ctx := context.Background()

	bad := "id,make,model,year,licensePlate,vin,status,currentMileage,purchaseDate," +
		"purchasePrice,currentValue,dailyRate,weeklyRate,monthlyRate,fuelType," +
		"transmission,category,seats,color,nextServiceType,nextServiceDueMileage,nextServiceDueDate\n" +
		`"vX","Kia","Rio","not-a-year","P1","VIN1","available",100,"2020-01-01",` +
		`10000,9000,40,240,900,"gasoline","manual","compact",5,"white","oil",5000,"2025-01-01"`

	_, err := svc.ImportCSV(ctx, CollectionVehicles, []byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 3, "failed import must not replace the collection")
}

// A file with another collection's header set must reject, not materialize
// blank vehicles from the missing columns.
func TestImportCSV_WrongSchemaRejected(t *testing.T) {
	svc, store := newDataService(t)
	ctx := context.Background()

	customersShaped := "id,firstName,lastName,email\n" +
		`"c001","John","Doe","john.doe@example.com"`

	_, err := svc.ImportCSV(ctx, CollectionVehicles, []byte(customersShaped))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing field")

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 3, "rejected import must not replace the collection")
	assert.Equal(t, "v001", vehicles[0].ID)
}

func TestImportCSV_UnknownCollection(t *testing.T) {
	svc, _ := newDataService(t)

	_, err := svc.ImportCSV(context.Background(), "drivers", []byte("id\n\"1\""))
	assert.ErrorIs(t, err, xerrors.ErrUnknownCollection)
}

func TestExportCSV_EmptyCollection(t *testing.T) {
	svc, store := newDataService(t)
	ctx := context.Background()
	require.NoError(t, store.SaveCustomers(ctx, nil))

	_, _, err := svc.ExportCSV(ctx, CollectionCustomers)
	assert.ErrorIs(t, err, xerrors.ErrInsufficientData)
}

// A sheet with no usable rows imports zero records and changes nothing.
func TestImportFromSheets_NeutralOnHeaderOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"values": [][]any{{"id", "make"}},
		})
	}))
	defer srv.Close()

	svc, store := newDataService(t, sheets.WithBaseURL(srv.URL))
	ctx := context.Background()

	count, err := svc.ImportFromSheets(ctx, CollectionVehicles)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	vehicles, err := store.Vehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)
}

func TestExportToSheets_PushesCollectionSheet(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc, _ := newDataService(t, sheets.WithBaseURL(srv.URL))
	require.NoError(t, svc.ExportToSheets(context.Background(), CollectionCustomers))

	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "customers")
}
