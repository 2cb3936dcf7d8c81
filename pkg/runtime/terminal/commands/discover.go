package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/services/calibration"
	"github.com/vallme2003/top-coder-challenge/pkg/services/config"
	"github.com/vallme2003/top-coder-challenge/pkg/store/cases"
	"github.com/vallme2003/top-coder-challenge/pkg/store/formulas"
)

type DiscoverCmd struct {
	settingsPath string
	casesPath    string
	outputPath   string
}

func NewDiscoverCmd() *cobra.Command {
	dc := &DiscoverCmd{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Fit exact formulas against the labeled case set",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.settingsPath, "settings", "", "Path to the settings file")
	cmd.Flags().StringVar(&dc.casesPath, "cases", "", "Path to the labeled cases file")
	cmd.Flags().StringVar(&dc.outputPath, "output", "", "Path to write the formula table")

	return cmd
}

func (dc *DiscoverCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, err := config.LoadSettings(dc.settingsPath)
	if err != nil {
		return err
	}
	if dc.casesPath != "" {
		settings.CasesPath = dc.casesPath
	}
	if dc.outputPath != "" {
		settings.FormulasPath = dc.outputPath
	}

	records, err := cases.NewStore(settings.CasesPath).ListCases(ctx)
	if err != nil {
		return err
	}

	discoverer := calibration.NewDiscoverer(calibration.DefaultGrids(), settings.ExactTolerance)
	table, err := discoverer.Discover(ctx, records)
	if err != nil {
		return err
	}

	if err := formulas.NewStore(settings.FormulasPath).SaveFormulas(ctx, table); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Discovered %d formulas, saved to %s\n",
		len(table), settings.FormulasPath)
	return nil
}
