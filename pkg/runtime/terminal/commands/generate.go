package commands

import (
	"fmt"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	flags    paramFlags
	rows     int
	builder  dataset.Builder
	reporter *export.Reporter
}

func NewGenerateCmd(builder dataset.Builder, reporter *export.Reporter, defaults domain.Params) *cobra.Command {
	gc := &GenerateCmd{builder: builder, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset and print its summary and newest rows",
		RunE:  gc.run,
	}

	gc.flags.register(cmd, defaults)
	cmd.Flags().IntVar(&gc.rows, "rows", 20, "Number of table rows to print, 0 prints all")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	params, err := gc.flags.params()
	if err != nil {
		return err
	}

	ds, err := gc.builder.Build(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to build dataset: %w", err)
	}

	return gc.reporter.WithRows(gc.rows).Handle(ds)
}
