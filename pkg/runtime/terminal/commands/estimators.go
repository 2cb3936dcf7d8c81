package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

type EstimatorsCmd struct {
	registry engine.Registry
}

func NewEstimatorsCmd(registry engine.Registry) *cobra.Command {
	ec := &EstimatorsCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "estimators",
		Short: "List registered estimators",
		RunE:  ec.run,
	}
	return cmd
}

func (ec *EstimatorsCmd) run(cmd *cobra.Command, args []string) error {
	names := ec.registry.ListEstimators()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No estimators registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered estimators:\n%s\n", strings.Join(names, "\n"))
	return nil
}
