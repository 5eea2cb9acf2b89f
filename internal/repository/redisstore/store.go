// internal/repository/redisstore/store.go

// Package redisstore is the key-value store adapter behind the dashboard:
// three whole-collection records plus a handful of scalar settings, each
// one string value under a namespaced key. A save replaces the entire
// collection; there is no per-record update primitive and no merge. Writes
// are last-write-wins and saves across collections are not grouped
// atomically.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rentsmart-service/internal/domain/auth"
	"rentsmart-service/internal/domain/fleet"
	xerrors "rentsmart-service/internal/pkg/errors"
)

// Namespaced storage keys, one string value each.
const (
	KeyVehicles     = "rent-smart-vehicles"
	KeyCustomers    = "rent-smart-customers"
	KeyContracts    = "rent-smart-contracts"
	KeyUserSettings = "rent-smart-user-settings"
	KeySheetsAPIKey = "rent-smart-google-sheets-api-key"
	KeySheetID      = "rent-smart-google-sheets-id"

	sessionKeyPrefix = "rent-smart-session:"
)

type Store struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewStore(rdb *redis.Client, logger *zap.Logger) *Store {
	return &Store{rdb: rdb, logger: logger}
}

// Init seeds each managed collection from the built-in dataset when its key
// holds no value yet. Idempotent: existing data is never overwritten, so two
// Init calls with a save in between leave the saved data intact.
func (s *Store) Init(ctx context.Context) error {
	seed := SeedDataset()
	if err := s.seedIfAbsent(ctx, KeyVehicles, seed.Vehicles); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, KeyCustomers, seed.Customers); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, KeyContracts, seed.Contracts); err != nil {
		return err
	}
	return nil
}

func (s *Store) seedIfAbsent(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("seed %s: %w", key, xerrors.ErrStorageWrite)
	}
	created, err := s.rdb.SetNX(ctx, key, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("seed %s: %v: %w", key, err, xerrors.ErrStorageWrite)
	}
	if created {
		s.logger.Info("seeded collection", zap.String("key", key))
	}
	return nil
}

func (s *Store) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	var out []fleet.Vehicle
	if err := s.getJSON(ctx, KeyVehicles, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveVehicles(ctx context.Context, records []fleet.Vehicle) error {
	return s.setJSON(ctx, KeyVehicles, records)
}

func (s *Store) Customers(ctx context.Context) ([]fleet.Customer, error) {
	var out []fleet.Customer
	if err := s.getJSON(ctx, KeyCustomers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveCustomers(ctx context.Context, records []fleet.Customer) error {
	return s.setJSON(ctx, KeyCustomers, records)
}

func (s *Store) Contracts(ctx context.Context) ([]fleet.Contract, error) {
	var out []fleet.Contract
	if err := s.getJSON(ctx, KeyContracts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveContracts(ctx context.Context, records []fleet.Contract) error {
	return s.setJSON(ctx, KeyContracts, records)
}

// Settings returns the raw user-settings blob, nil when absent. The blob is
// opaque to the store.
func (s *Store) Settings(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.rdb.Get(ctx, KeyUserSettings).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", KeyUserSettings, err)
	}
	return json.RawMessage(raw), nil
}

func (s *Store) SaveSettings(ctx context.Context, blob json.RawMessage) error {
	if err := s.rdb.Set(ctx, KeyUserSettings, string(blob), 0).Err(); err != nil {
		return fmt.Errorf("set %s: %v: %w", KeyUserSettings, err, xerrors.ErrStorageWrite)
	}
	return nil
}

// Spreadsheet sync configuration, two independently settable keys.

func (s *Store) SheetsAPIKey(ctx context.Context) (string, error) {
	return s.getString(ctx, KeySheetsAPIKey)
}

func (s *Store) SetSheetsAPIKey(ctx context.Context, key string) error {
	return s.setString(ctx, KeySheetsAPIKey, key)
}

func (s *Store) SheetID(ctx context.Context) (string, error) {
	return s.getString(ctx, KeySheetID)
}

func (s *Store) SetSheetID(ctx context.Context, id string) error {
	return s.setString(ctx, KeySheetID, id)
}

// Session identity persistence. One key per session token id; logout deletes
// the key and the session is gone.

func (s *Store) PutSession(ctx context.Context, jti string, user auth.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", xerrors.ErrStorageWrite)
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+jti, payload, ttl).Err(); err != nil {
		return fmt.Errorf("put session: %v: %w", err, xerrors.ErrStorageWrite)
	}
	return nil
}

func (s *Store) Session(ctx context.Context, jti string) (*auth.User, error) {
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+jti).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var user auth.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &user, nil
}

func (s *Store) DeleteSession(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+jti).Err()
}

// --- helpers ---

func (s *Store) getJSON(ctx context.Context, key string, v any) error {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, xerrors.ErrStorageWrite)
	}
	if err := s.rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %v: %w", key, err, xerrors.ErrStorageWrite)
	}
	return nil
}

func (s *Store) getString(ctx context.Context, key string) (string, error) {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return raw, nil
}

func (s *Store) setString(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %v: %w", key, err, xerrors.ErrStorageWrite)
	}
	return nil
}
