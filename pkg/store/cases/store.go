package cases

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
)

// Store provides read access to a JSON case file.
type Store interface {
	ListCases(ctx context.Context) ([]store.CaseRecord, error)
}

type fileStore struct {
	path string
}

// NewStore creates a case store backed by the JSON file at path. Both the
// labeled (wrapped "input" object) and the private (flat fields) file shapes
// are supported.
func NewStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) ListCases(ctx context.Context) ([]store.CaseRecord, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", s.path, err)
	}

	var records []store.CaseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", s.path, err)
	}

	labeled := 0
	for _, rec := range records {
		if rec.Labeled() {
			labeled++
		}
	}
	logger.Debug().
		Str("path", s.path).
		Int("cases", len(records)).
		Int("labeled", labeled).
		Msg("loaded case file")

	return records, nil
}
