package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/dummy-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	builder  dataset.Builder
	registry profiles.Registry
	defaults domain.Params
	reporter *export.Reporter
	profiles *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Builder  dataset.Builder
	Registry profiles.Registry
	Defaults domain.Params
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		builder:  opts.Builder,
		registry: opts.Registry,
		defaults: opts.Defaults,
		reporter: export.NewReporter(opts.Output),
		profiles: NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with ctx, which carries the logger.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "atlas",
		Short:        "Synthetic business metrics generator",
		SilenceUsage: true,
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.builder, cli.reporter, cli.defaults))
	cmd.AddCommand(commands.NewExportCmd(cli.builder, cli.defaults))
	cmd.AddCommand(commands.NewCategoriesCmd(cli.registry, cli.profiles))

	return cmd
}
