package results

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Store persists batch calculation results, one dollar amount per line in
// input order.
type Store interface {
	WriteAmounts(ctx context.Context, amounts []float64) error
}

type fileStore struct {
	path string
}

func NewStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) WriteAmounts(ctx context.Context, amounts []float64) error {
	var b strings.Builder
	for _, amount := range amounts {
		fmt.Fprintf(&b, "%.2f\n", amount)
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", s.path, err)
	}

	zerolog.Ctx(ctx).Info().Str("path", s.path).Int("results", len(amounts)).Msg("wrote results file")
	return nil
}
