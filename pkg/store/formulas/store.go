package formulas

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
)

// Key returns the canonical triple key used to index formula records.
// Floats are rendered with shortest round-trip formatting so the key of a
// parsed CLI argument matches the key of the stored record.
func Key(days int, miles, receipts float64) string {
	return strconv.Itoa(days) + "," +
		strconv.FormatFloat(miles, 'f', -1, 64) + "," +
		strconv.FormatFloat(receipts, 'f', -1, 64)
}

// Store provides access to the discovered formula table.
type Store interface {
	ListFormulas(ctx context.Context) ([]store.FormulaRecord, error)
	// Find returns the record for an exact input triple, if one exists.
	Find(ctx context.Context, days int, miles, receipts float64) (store.FormulaRecord, bool, error)
	SaveFormulas(ctx context.Context, records []store.FormulaRecord) error
}

type fileStore struct {
	path    string
	loaded  bool
	records []store.FormulaRecord
	index   map[string]store.FormulaRecord
}

// NewStore creates a formula store backed by the JSON file at path. A
// missing file is treated as an empty table: lookups simply miss and the
// engine falls through to its heuristics.
func NewStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) ensure(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", s.path).Msg("formula table not found, starting empty")
			s.records = nil
			s.index = map[string]store.FormulaRecord{}
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read formula table %s: %w", s.path, err)
	}

	var records []store.FormulaRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse formula table %s: %w", s.path, err)
	}

	s.records = records
	s.index = make(map[string]store.FormulaRecord, len(records))
	for _, rec := range records {
		s.index[Key(rec.Days, rec.Miles, rec.Receipts)] = rec
	}
	s.loaded = true

	logger.Debug().Str("path", s.path).Int("formulas", len(records)).Msg("loaded formula table")
	return nil
}

func (s *fileStore) ListFormulas(ctx context.Context) ([]store.FormulaRecord, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	return s.records, nil
}

func (s *fileStore) Find(ctx context.Context, days int, miles, receipts float64) (store.FormulaRecord, bool, error) {
	if err := s.ensure(ctx); err != nil {
		return store.FormulaRecord{}, false, err
	}
	rec, ok := s.index[Key(days, miles, receipts)]
	return rec, ok, nil
}

func (s *fileStore) SaveFormulas(ctx context.Context, records []store.FormulaRecord) error {
	sorted := make([]store.FormulaRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Days != sorted[j].Days {
			return sorted[i].Days < sorted[j].Days
		}
		if sorted[i].Miles != sorted[j].Miles {
			return sorted[i].Miles < sorted[j].Miles
		}
		return sorted[i].Receipts < sorted[j].Receipts
	})

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode formula table: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write formula table %s: %w", s.path, err)
	}

	s.records = sorted
	s.index = make(map[string]store.FormulaRecord, len(sorted))
	for _, rec := range sorted {
		s.index[Key(rec.Days, rec.Miles, rec.Receipts)] = rec
	}
	s.loaded = true

	zerolog.Ctx(ctx).Info().Str("path", s.path).Int("formulas", len(sorted)).Msg("saved formula table")
	return nil
}
