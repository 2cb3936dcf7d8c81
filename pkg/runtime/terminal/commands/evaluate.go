package commands

import (
	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/runtime/terminal/export"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/services/eval"
	"github.com/vallme2003/top-coder-challenge/pkg/store/cases"
)

type EvaluateCmd struct {
	engineConfig
	casesPath string
	registry  engine.Registry
	reporter  export.Handler
}

func NewEvaluateCmd(registry engine.Registry, reporter export.Handler) *cobra.Command {
	ec := &EvaluateCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score the engine against the labeled case set",
		RunE:  ec.run,
	}

	ec.bind(cmd)
	cmd.Flags().StringVar(&ec.casesPath, "cases", "", "Path to the labeled cases file")

	return cmd
}

func (ec *EvaluateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, tuning, err := ec.load(ctx)
	if err != nil {
		return err
	}
	if ec.casesPath != "" {
		settings.CasesPath = ec.casesPath
	}

	eng, err := buildEngine(ec.registry, settings, tuning)
	if err != nil {
		return err
	}

	records, err := cases.NewStore(settings.CasesPath).ListCases(ctx)
	if err != nil {
		return err
	}

	evaluator := eval.NewEvaluator(eng, eval.Settings{
		ExactTolerance: settings.ExactTolerance,
		CloseTolerance: settings.CloseTolerance,
		WorstCases:     settings.WorstCases,
	})

	metrics, results, err := evaluator.Run(ctx, records)
	if err != nil {
		return err
	}

	return ec.reporter.Handle(evaluator.BuildReport(metrics, results))
}
