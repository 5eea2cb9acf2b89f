// internal/service/dataio/dataio_service.go

// Package dataio moves whole collections across the CSV and spreadsheet
// boundaries. Import flows file/remote → codec → typed records → store;
// export runs the same pipe in reverse. An import that fails validation
// leaves the store unchanged; nothing here is transactional across
// collections.
package dataio

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rentsmart-service/internal/domain/fleet"
	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/tabular"
	"rentsmart-service/internal/repository/redisstore"
	"rentsmart-service/internal/service/sheets"
)

// Managed collection names as they appear in routes, filenames and sheet
// names.
const (
	CollectionVehicles  = "vehicles"
	CollectionCustomers = "customers"
	CollectionContracts = "contracts"
)

type DataService struct {
	store  *redisstore.Store
	sheets *sheets.SheetsService
	logger *zap.Logger
}

func NewDataService(store *redisstore.Store, sheets *sheets.SheetsService, logger *zap.Logger) *DataService {
	return &DataService{store: store, sheets: sheets, logger: logger}
}

// Records flattens a stored collection into ordered records for export.
func (s *DataService) Records(ctx context.Context, collection string) ([]*tabular.Record, error) {
	switch collection {
	case CollectionVehicles:
		vehicles, err := s.store.Vehicles(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]*tabular.Record, len(vehicles))
		for i, v := range vehicles {
			records[i] = v.Record()
		}
		return records, nil
	case CollectionCustomers:
		customers, err := s.store.Customers(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]*tabular.Record, len(customers))
		for i, c := range customers {
			records[i] = c.Record()
		}
		return records, nil
	case CollectionContracts:
		contracts, err := s.store.Contracts(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]*tabular.Record, len(contracts))
		for i, c := range contracts {
			records[i] = c.Record()
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%q: %w", collection, xerrors.ErrUnknownCollection)
	}
}

// saveRecords coerces decoded records into the collection's typed form and
// replaces the stored collection. The first malformed record aborts the
// whole import before anything is written.
func (s *DataService) saveRecords(ctx context.Context, collection string, records []*tabular.Record) error {
	switch collection {
	case CollectionVehicles:
		out := make([]fleet.Vehicle, len(records))
		for i, rec := range records {
			v, err := fleet.VehicleFromRecord(rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = v
		}
		return s.store.SaveVehicles(ctx, out)
	case CollectionCustomers:
		out := make([]fleet.Customer, len(records))
		for i, rec := range records {
			c, err := fleet.CustomerFromRecord(rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = c
		}
		return s.store.SaveCustomers(ctx, out)
	case CollectionContracts:
		out := make([]fleet.Contract, len(records))
		for i, rec := range records {
			c, err := fleet.ContractFromRecord(rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = c
		}
		return s.store.SaveContracts(ctx, out)
	default:
		return fmt.Errorf("%q: %w", collection, xerrors.ErrUnknownCollection)
	}
}

// ExportCSV encodes a collection for download as <collection>.csv. An empty
// collection is the neutral ErrInsufficientData outcome, not a failure.
func (s *DataService) ExportCSV(ctx context.Context, collection string) (string, []byte, error) {
	records, err := s.Records(ctx, collection)
	if err != nil {
		return "", nil, err
	}
	text, err := tabular.Encode(records)
	if err != nil {
		return "", nil, err
	}
	return collection + ".csv", []byte(text), nil
}

// ImportCSV decodes uploaded CSV text and replaces the collection. Returns
// the number of imported records.
func (s *DataService) ImportCSV(ctx context.Context, collection string, data []byte) (int, error) {
	records, err := tabular.Decode(string(data))
	if err != nil {
		return 0, err
	}
	if err := s.saveRecords(ctx, collection, records); err != nil {
		return 0, err
	}
	s.logger.Info("collection imported from CSV",
		zap.String("collection", collection),
		zap.Int("records", len(records)),
	)
	return len(records), nil
}

// ExportToSheets pushes a collection to the remote sheet named after it.
func (s *DataService) ExportToSheets(ctx context.Context, collection string) error {
	records, err := s.Records(ctx, collection)
	if err != nil {
		return err
	}
	return s.sheets.Push(ctx, collection, records)
}

// ImportFromSheets pulls the remote sheet named after the collection and
// replaces the stored collection. A pull with no usable data imports zero
// records and leaves the store unchanged.
func (s *DataService) ImportFromSheets(ctx context.Context, collection string) (int, error) {
	records, err := s.sheets.Pull(ctx, collection)
	if err != nil {
		return 0, err
	}
	if records == nil {
		return 0, nil
	}
	if err := s.saveRecords(ctx, collection, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
