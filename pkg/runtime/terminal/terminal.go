package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vallme2003/top-coder-challenge/pkg/runtime/terminal/commands"
	"github.com/vallme2003/top-coder-challenge/pkg/runtime/terminal/export"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

// CLI represents the command-line interface
type CLI struct {
	registry engine.Registry
	reporter export.Handler
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry engine.Registry
	Output   io.Writer
	// Plain switches report rendering from tables to flat text.
	Plain bool
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var reporter export.Handler = export.NewReporter(opts.Output)
	if opts.Plain {
		reporter = NewReporter(opts.Output)
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: reporter,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reimburse",
		Short: "Legacy travel reimbursement estimation toolkit",
	}

	cmd.AddCommand(commands.NewCalculateCmd(cli.registry))
	cmd.AddCommand(commands.NewEvaluateCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewGenerateCmd(cli.registry))
	cmd.AddCommand(commands.NewDiscoverCmd())
	cmd.AddCommand(commands.NewAnalyzeCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewEstimatorsCmd(cli.registry))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
