package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vallme2003/top-coder-challenge/pkg/runtime/terminal/export"
)

func TestAnalyzeCmd_ThresholdsFromSettings(t *testing.T) {
	var out bytes.Buffer
	cmd := NewAnalyzeCmd(testRegistry(), export.NewReporter(&out))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--settings", "testdata/analyze_settings.yaml",
		"--cases", "testdata/cases.json",
	})

	require.NoError(t, cmd.Execute())

	// The one-day case misses by several hundred dollars; with the error
	// threshold lowered to $0.50 and the bucket size floor to 1, its
	// segment must be flagged at high severity.
	assert.Contains(t, out.String(), "days:1")
	assert.Contains(t, out.String(), "high")
	assert.Contains(t, out.String(), "Trip Length Buckets")
}
