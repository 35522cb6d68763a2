package dataset

import (
	"fmt"

	"github.com/de-tools/dummy-atlas/pkg/services/config"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/de-tools/dummy-atlas/pkg/services/yoy"
	"github.com/de-tools/dummy-atlas/pkg/store/duckdb"
	"github.com/de-tools/dummy-atlas/pkg/store/duckdb/records"
)

// NewFromConfig wires the profile registry and the configured join engine into a Builder.
// The returned close function releases the engine's resources.
func NewFromConfig(cfg *config.Config, opts ...Option) (Builder, profiles.Registry, func() error, error) {
	registry, err := profiles.NewRegistryFromFile(cfg.Profiles)
	if err != nil {
		return nil, nil, nil, err
	}

	noop := func() error { return nil }
	switch cfg.Engine.Kind {
	case config.EngineDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Engine.DbPath})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		augmenter, err := records.NewAugmenter(db)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return NewBuilder(registry, augmenter, opts...), registry, db.Close, nil
	default:
		return NewBuilder(registry, yoy.NewAugmenter(), opts...), registry, noop, nil
	}
}
