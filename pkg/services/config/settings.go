package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings is the file-level configuration of the toolkit: data file
// locations, the estimator chain and the scoring tolerances.
type Settings struct {
	CasesPath        string   `mapstructure:"cases_path"`
	PrivateCasesPath string   `mapstructure:"private_cases_path"`
	FormulasPath     string   `mapstructure:"formulas_path"`
	ResultsPath      string   `mapstructure:"results_path"`
	Chain            []string `mapstructure:"chain"`
	ExactTolerance   float64  `mapstructure:"exact_tolerance"`
	CloseTolerance   float64  `mapstructure:"close_tolerance"`
	MinPlausible     float64  `mapstructure:"min_plausible"`
	MaxPlausible     float64  `mapstructure:"max_plausible"`
	WorstCases       int      `mapstructure:"worst_cases"`

	AnalysisErrorThreshold     float64 `mapstructure:"analysis_error_threshold"`
	AnalysisHighErrorThreshold float64 `mapstructure:"analysis_high_error_threshold"`
	AnalysisMinBucketSize      int     `mapstructure:"analysis_min_bucket_size"`
}

// DefaultSettings returns the configuration used when no settings file is
// provided.
func DefaultSettings() Settings {
	return Settings{
		CasesPath:        "public_cases.json",
		PrivateCasesPath: "private_cases.json",
		FormulasPath:     "data/formulas.json",
		ResultsPath:      "private_results.txt",
		Chain:            []string{"lookup", "pattern", "tree", "tiered"},
		ExactTolerance:   0.01,
		CloseTolerance:   1.00,
		MinPlausible:     50,
		MaxPlausible:     2500,
		WorstCases:       5,

		AnalysisErrorThreshold:     100,
		AnalysisHighErrorThreshold: 250,
		AnalysisMinBucketSize:      3,
	}
}

// LoadSettings reads the settings file at path on top of the defaults. An
// empty path returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return settings, nil
}
