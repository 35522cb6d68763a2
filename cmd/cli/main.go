package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/dummy-atlas/pkg/runtime/terminal"
	"github.com/de-tools/dummy-atlas/pkg/services/config"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	defaults, err := cfg.DefaultParams()
	if err != nil {
		return err
	}

	builder, registry, closeEngine, err := dataset.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeEngine(); err != nil {
			logger.Error().Err(err).Msg("failed to close engine")
		}
	}()

	cli := terminal.NewCLI(terminal.Options{
		Builder:  builder,
		Registry: registry,
		Defaults: defaults,
		Output:   os.Stdout,
	})

	return cli.ExecuteContext(logger.WithContext(context.Background()))
}
