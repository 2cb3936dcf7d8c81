package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAmounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private_results.txt")
	s := NewStore(path)

	err := s.WriteAmounts(context.Background(), []float64{581.58, 100, 1296.7})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "581.58\n100.00\n1296.70\n", string(data))
}
