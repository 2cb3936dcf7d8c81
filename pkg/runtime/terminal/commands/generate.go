package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/adapters"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/store/cases"
	"github.com/vallme2003/top-coder-challenge/pkg/store/results"
)

type GenerateCmd struct {
	engineConfig
	casesPath  string
	outputPath string
	registry   engine.Registry
}

func NewGenerateCmd(registry engine.Registry) *cobra.Command {
	gc := &GenerateCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate submission results for the unlabeled case set",
		RunE:  gc.run,
	}

	gc.bind(cmd)
	cmd.Flags().StringVar(&gc.casesPath, "cases", "", "Path to the unlabeled cases file")
	cmd.Flags().StringVar(&gc.outputPath, "output", "", "Path to write the results file")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, tuning, err := gc.load(ctx)
	if err != nil {
		return err
	}
	if gc.casesPath != "" {
		settings.PrivateCasesPath = gc.casesPath
	}
	if gc.outputPath != "" {
		settings.ResultsPath = gc.outputPath
	}

	eng, err := buildEngine(gc.registry, settings, tuning)
	if err != nil {
		return err
	}

	records, err := cases.NewStore(settings.PrivateCasesPath).ListCases(ctx)
	if err != nil {
		return err
	}

	amounts := make([]float64, 0, len(records))
	for i, rec := range records {
		trip := adapters.MapStoreCaseToDomainTrip(rec)
		result, err := eng.Estimate(ctx, trip)
		if err != nil {
			return fmt.Errorf("failed to estimate case %d: %w", i, err)
		}
		amounts = append(amounts, result.Amount)
	}

	if err := results.NewStore(settings.ResultsPath).WriteAmounts(ctx, amounts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d results to %s\n", len(amounts), settings.ResultsPath)
	return nil
}
