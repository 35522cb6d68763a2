package main

import (
	"fmt"
	"os"

	"github.com/de-tools/dummy-atlas/pkg/server"
	"github.com/de-tools/dummy-atlas/pkg/services/config"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the dummy data dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (settings can also come from ATLAS_* env vars)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger = logger.Level(level)

	defaults, err := cfg.DefaultParams()
	if err != nil {
		return err
	}

	builder, registry, closeEngine, err := dataset.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create dataset builder: %w", err)
	}
	defer func() {
		if err := closeEngine(); err != nil {
			logger.Error().Err(err).Msg("failed to close engine")
		}
	}()

	logger.Info().
		Str("engine", cfg.Engine.Kind).
		Str("default_category", string(defaults.Category)).
		Int("default_years", defaults.Years).
		Int("default_max_rows", defaults.MaxRows).
		Msg("configuration loaded")

	webAPI := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Builder:  builder,
			Registry: registry,
			Defaults: defaults,
			Logger:   logger,
		},
	})

	return webAPI.Start()
}
