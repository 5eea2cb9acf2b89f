// internal/service/sheets/sheets_service.go

// Package sheets pushes and pulls record collections to a remote spreadsheet
// over HTTP. Configuration (API key, sheet id) lives in the store; its
// absence blocks a call before any network I/O. A push is a clear-range
// request followed by a bounded overwrite and carries no atomicity: the
// clear may have landed even when the write fails.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/tabular"
	"rentsmart-service/internal/repository/redisstore"
)

const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

type SheetsService struct {
	store   *redisstore.Store
	httpc   *http.Client
	baseURL string
	logger  *zap.Logger
}

type Option func(*SheetsService)

// WithBaseURL points the client at a different spreadsheet endpoint. Tests
// use this with an httptest server.
func WithBaseURL(base string) Option {
	return func(s *SheetsService) { s.baseURL = base }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *SheetsService) { s.httpc = c }
}

func NewSheetsService(store *redisstore.Store, logger *zap.Logger, opts ...Option) *SheetsService {
	s := &SheetsService{
		store:   store,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultBaseURL,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type sheetConfig struct {
	apiKey  string
	sheetID string
}

func (s *SheetsService) config(ctx context.Context) (sheetConfig, error) {
	apiKey, err := s.store.SheetsAPIKey(ctx)
	if err != nil {
		return sheetConfig{}, err
	}
	sheetID, err := s.store.SheetID(ctx)
	if err != nil {
		return sheetConfig{}, err
	}
	if apiKey == "" || sheetID == "" {
		return sheetConfig{}, xerrors.ErrSheetsConfigMissing
	}
	return sheetConfig{apiKey: apiKey, sheetID: sheetID}, nil
}

// Push overwrites the named sheet with the records: header row from the
// first record's field order, one row per record in that same order. Records
// must be non-empty and uniform in shape.
func (s *SheetsService) Push(ctx context.Context, sheetName string, records []*tabular.Record) error {
	if len(records) == 0 {
		return xerrors.ErrInsufficientData
	}
	cfg, err := s.config(ctx)
	if err != nil {
		return err
	}

	header := records[0].Keys()
	values := make([][]string, 0, len(records)+1)
	values = append(values, header)
	for i, rec := range records {
		if rec.Len() != len(header) {
			return fmt.Errorf("record %d: %w", i, xerrors.ErrShapeMismatch)
		}
		row := make([]string, len(header))
		for j, key := range header {
			v, ok := rec.Get(key)
			if !ok {
				return fmt.Errorf("record %d: missing field %q: %w", i, key, xerrors.ErrShapeMismatch)
			}
			row[j] = tabular.FormatValue(v)
		}
		values = append(values, row)
	}

	clearURL := fmt.Sprintf("%s/%s/values/%s:clear",
		s.baseURL, cfg.sheetID, url.PathEscape(sheetName+"!A1:Z1000"))
	if err := s.send(ctx, http.MethodPost, clearURL, cfg.apiKey, nil); err != nil {
		return fmt.Errorf("clear sheet %s: %w", sheetName, err)
	}

	body, err := json.Marshal(map[string]any{"values": values})
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	updateURL := fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW",
		s.baseURL, cfg.sheetID, url.PathEscape(fmt.Sprintf("%s!A1:Z%d", sheetName, len(values))))
	if err := s.send(ctx, http.MethodPut, updateURL, cfg.apiKey, body); err != nil {
		// The preceding clear has already applied; the sheet may be empty now.
		return fmt.Errorf("update sheet %s: %w", sheetName, err)
	}

	s.logger.Info("exported to spreadsheet",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(values)-1),
	)
	return nil
}

type valueRange struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

// Pull reads the named sheet and converts its rows back to records using the
// same scalar coercion as the tabular codec. Fewer than two rows (header
// plus one data row) is no usable data: Pull returns (nil, nil), not an
// error, so callers can report the neutral outcome.
func (s *SheetsService) Pull(ctx context.Context, sheetName string) ([]*tabular.Record, error) {
	cfg, err := s.config(ctx)
	if err != nil {
		return nil, err
	}

	readURL := fmt.Sprintf("%s/%s/values/%s?key=%s",
		s.baseURL, cfg.sheetID, url.PathEscape(sheetName), url.QueryEscape(cfg.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("read sheet %s: unexpected status %d", sheetName, resp.StatusCode)
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", sheetName, err)
	}
	if len(vr.Values) < 2 {
		return nil, nil
	}

	header := make([]string, len(vr.Values[0]))
	for i, h := range vr.Values[0] {
		header[i] = fmt.Sprint(h)
	}

	records := make([]*tabular.Record, 0, len(vr.Values)-1)
	for _, row := range vr.Values[1:] {
		rec := tabular.NewRecord()
		for i, key := range header {
			var cell any = ""
			if i < len(row) {
				cell = row[i]
			}
			if str, ok := cell.(string); ok {
				cell = tabular.Coerce(str)
			}
			rec.Set(key, cell)
		}
		records = append(records, rec)
	}

	s.logger.Info("imported from spreadsheet",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(records)),
	)
	return records, nil
}

func (s *SheetsService) send(ctx context.Context, method, rawURL, apiKey string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
