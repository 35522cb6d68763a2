package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/services/generator"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/de-tools/dummy-atlas/pkg/services/yoy"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Builder interface {
	Build(ctx context.Context, params domain.Params) (*domain.Dataset, error)
}

type Option func(*defaultBuilder)

// WithClock overrides the time used to anchor the generated period.
func WithClock(now func() time.Time) Option {
	return func(b *defaultBuilder) { b.now = now }
}

// WithSourceFactory overrides how a random source is created from the seed.
func WithSourceFactory(f func(seed uint64) generator.Source) Option {
	return func(b *defaultBuilder) { b.newSource = f }
}

type defaultBuilder struct {
	profiles  profiles.Registry
	augmenter yoy.Augmenter
	now       func() time.Time
	newSource func(seed uint64) generator.Source
}

func NewBuilder(registry profiles.Registry, augmenter yoy.Augmenter, opts ...Option) Builder {
	b := &defaultBuilder{
		profiles:  registry,
		augmenter: augmenter,
		now:       time.Now,
		newSource: generator.NewRandSource,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build regenerates the whole period from scratch, keeps the latest MaxRows days
// and joins them against the full period for prior-year figures.
func (b *defaultBuilder) Build(ctx context.Context, params domain.Params) (*domain.Dataset, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	params.Seed = b.resolveSeed(params.Seed)

	profile, err := b.profiles.GetProfile(ctx, params.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}

	period := generator.Period(params.Years, b.now())
	full := generator.NewGenerator(b.newSource(params.Seed)).Generate(profile, period)
	working := yoy.Truncate(full, params.MaxRows)

	records, err := b.augmenter.Augment(ctx, full, working)
	if err != nil {
		return nil, fmt.Errorf("failed to compute year-over-year figures: %w", err)
	}

	ds := &domain.Dataset{
		ID:      uuid.NewString(),
		Params:  params,
		Period:  period,
		Records: records,
		Summary: Summarize(records),
	}

	zerolog.Ctx(ctx).Info().
		Str("dataset_id", ds.ID).
		Str("category", string(params.Category)).
		Int("years", params.Years).
		Uint64("seed", params.Seed).
		Int("generated", len(full)).
		Int("rows", len(records)).
		Dur("took", time.Since(started)).
		Msg("dataset built")

	return ds, nil
}

// resolveSeed replaces the zero seed with one from the clock so that the
// dataset records the seed it was actually generated with.
func (b *defaultBuilder) resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	if seed = uint64(b.now().UnixNano()); seed == 0 {
		seed = 1
	}
	return seed
}
