package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

type CalculateCmd struct {
	engineConfig
	explain  bool
	registry engine.Registry
}

func NewCalculateCmd(registry engine.Registry) *cobra.Command {
	cc := &CalculateCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "calculate <days> <miles> <receipts>",
		Short: "Calculate the reimbursement for a single trip",
		Args:  cobra.ExactArgs(3),
		RunE:  cc.run,
	}

	cc.bind(cmd)
	cmd.Flags().BoolVar(&cc.explain, "explain", false, "Print the estimator and breakdown to stderr")

	return cmd
}

func (cc *CalculateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	days, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid trip duration %q: %w", args[0], err)
	}
	miles, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid miles traveled %q: %w", args[1], err)
	}
	receipts, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid receipts amount %q: %w", args[2], err)
	}

	settings, tuning, err := cc.load(ctx)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cc.registry, settings, tuning)
	if err != nil {
		return err
	}

	result, err := eng.Estimate(ctx, domain.Trip{Days: days, Miles: miles, Receipts: receipts})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", result.Amount)

	if cc.explain {
		fmt.Fprintf(cmd.ErrOrStderr(), "estimator: %s (confidence %.2f)\n",
			result.Source, result.Confidence)
		names := make([]string, 0, len(result.Breakdown))
		for name := range result.Breakdown {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %.2f\n", name, result.Breakdown[name])
		}
	}

	return nil
}
