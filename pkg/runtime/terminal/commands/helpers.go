package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/services/config"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/store/formulas"
)

// engineConfig holds the flags shared by every command that runs the
// estimation engine.
type engineConfig struct {
	settingsPath string
	profilesPath string
	profile      string
}

func (ec *engineConfig) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ec.settingsPath, "settings", "", "Path to the settings file")
	cmd.Flags().StringVar(&ec.profilesPath, "profiles", "", "Path to the tuning profiles file")
	cmd.Flags().StringVar(&ec.profile, "profile", "", "Tuning profile to apply")
}

func (ec *engineConfig) load(ctx context.Context) (config.Settings, domain.Tuning, error) {
	settings, err := config.LoadSettings(ec.settingsPath)
	if err != nil {
		return config.Settings{}, domain.Tuning{}, err
	}

	tuning := domain.DefaultTuning()
	if ec.profile != "" {
		if ec.profilesPath == "" {
			return config.Settings{}, domain.Tuning{},
				fmt.Errorf("--profile requires --profiles")
		}
		registry, err := config.NewRegistry(ec.profilesPath)
		if err != nil {
			return config.Settings{}, domain.Tuning{}, err
		}
		tuning, err = registry.GetTuning(ctx, ec.profile)
		if err != nil {
			return config.Settings{}, domain.Tuning{}, err
		}
	}

	return settings, tuning, nil
}

func buildEngine(
	registry engine.Registry,
	settings config.Settings,
	tuning domain.Tuning,
) (engine.Engine, error) {
	env := engine.Env{
		Formulas:     formulas.NewStore(settings.FormulasPath),
		Tuning:       tuning,
		MinPlausible: settings.MinPlausible,
		MaxPlausible: settings.MaxPlausible,
	}
	return engine.NewEngine(registry, env, engine.Options{
		Chain:        settings.Chain,
		MinPlausible: settings.MinPlausible,
		MaxPlausible: settings.MaxPlausible,
	})
}
