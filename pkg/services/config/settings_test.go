package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_EmptyPathReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	settings, err := LoadSettings("testdata/settings.yaml")
	require.NoError(t, err)

	assert.Equal(t, "data/public_cases.json", settings.CasesPath)
	assert.Equal(t, "data/formulas.json", settings.FormulasPath)
	assert.Equal(t, []string{"lookup", "tiered"}, settings.Chain)
	assert.Equal(t, 2.5, settings.CloseTolerance)
	assert.Equal(t, 10, settings.WorstCases)
	assert.Equal(t, 150.0, settings.AnalysisErrorThreshold)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "private_cases.json", settings.PrivateCasesPath)
	assert.Equal(t, 0.01, settings.ExactTolerance)
	assert.Equal(t, 50.0, settings.MinPlausible)
	assert.Equal(t, 2500.0, settings.MaxPlausible)
	assert.Equal(t, 250.0, settings.AnalysisHighErrorThreshold)
	assert.Equal(t, 3, settings.AnalysisMinBucketSize)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}
