package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/runtime/files"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var writers = map[string]func(io.Writer, *domain.Dataset) error{
	"csv":  files.WriteCSV,
	"xlsx": files.WriteXLSX,
}

type ExportCmd struct {
	flags   paramFlags
	format  string
	outDir  string
	all     bool
	builder dataset.Builder
}

func NewExportCmd(builder dataset.Builder, defaults domain.Params) *cobra.Command {
	ec := &ExportCmd{builder: builder}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a dataset and write it to a file",
		RunE:  ec.run,
	}

	ec.flags.register(cmd, defaults)
	cmd.Flags().StringVar(&ec.format, "format", "csv", "Output format (csv or xlsx)")
	cmd.Flags().StringVar(&ec.outDir, "out", ".", "Directory to write files to")
	cmd.Flags().BoolVar(&ec.all, "all", false, "Export every category, ignoring --category")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	write, ok := writers[ec.format]
	if !ok {
		return fmt.Errorf("unsupported format %q, expected csv or xlsx", ec.format)
	}

	params, err := ec.flags.params()
	if err != nil {
		return err
	}

	if !ec.all {
		path, err := ec.export(cmd.Context(), params, write)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	paths := make([]string, len(domain.Categories))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, category := range domain.Categories {
		p := params
		p.Category = category
		if p.Seed != 0 {
			p.Seed += uint64(i)
		}
		g.Go(func() error {
			path, err := ec.export(ctx, p, write)
			paths[i] = path
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func (ec *ExportCmd) export(
	ctx context.Context,
	params domain.Params,
	write func(io.Writer, *domain.Dataset) error,
) (string, error) {
	ds, err := ec.builder.Build(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to build %s dataset: %w", params.Category, err)
	}

	path := filepath.Join(ec.outDir, files.FileName(params.Category, ec.format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f, ds); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Info().Str("path", path).Int("rows", len(ds.Records)).Msg("dataset exported")
	return path, f.Close()
}
