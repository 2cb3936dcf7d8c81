package commands

import (
	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/runtime/terminal/export"
	"github.com/vallme2003/top-coder-challenge/pkg/services/analysis"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/store/cases"
)

type AnalyzeCmd struct {
	engineConfig
	casesPath string
	registry  engine.Registry
	reporter  export.Handler
}

func NewAnalyzeCmd(registry engine.Registry, reporter export.Handler) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Segment the case set and flag poorly modeled patterns",
		RunE:  ac.run,
	}

	ac.bind(cmd)
	cmd.Flags().StringVar(&ac.casesPath, "cases", "", "Path to the labeled cases file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, tuning, err := ac.load(ctx)
	if err != nil {
		return err
	}
	if ac.casesPath != "" {
		settings.CasesPath = ac.casesPath
	}

	eng, err := buildEngine(ac.registry, settings, tuning)
	if err != nil {
		return err
	}

	records, err := cases.NewStore(settings.CasesPath).ListCases(ctx)
	if err != nil {
		return err
	}

	report, err := analysis.Analyze(ctx, records, eng, analysis.Settings{
		ErrorThreshold:     settings.AnalysisErrorThreshold,
		HighErrorThreshold: settings.AnalysisHighErrorThreshold,
		MinBucketSize:      settings.AnalysisMinBucketSize,
	})
	if err != nil {
		return err
	}

	return ac.reporter.Handle(report)
}
