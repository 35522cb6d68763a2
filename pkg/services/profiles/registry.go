package profiles

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

type Registry interface {
	GetProfile(ctx context.Context, category domain.Category) (domain.Profile, error)
	ListProfiles(ctx context.Context) []domain.Profile
}

type profileRegistry struct {
	profiles map[domain.Category]domain.Profile
}

// NewRegistry builds a registry from the built-in table with the given overrides applied.
// Every category is validated here so that lookups cannot fail on a known category.
func NewRegistry(overrides map[domain.Category]domain.Profile) (Registry, error) {
	profiles := Builtin()
	for c, p := range overrides {
		if !c.Valid() {
			return nil, fmt.Errorf("override for unknown category %q", c)
		}
		profiles[c] = cloneProfile(c, p)
	}

	var errs []error
	for _, c := range domain.Categories {
		p, ok := profiles[c]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: missing profile", c))
			continue
		}
		if err := validateProfile(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &profileRegistry{profiles: profiles}, nil
}

// NewRegistryFromFile loads overrides from an ini file; an empty path yields the built-in table.
func NewRegistryFromFile(path string) (Registry, error) {
	if path == "" {
		return NewRegistry(nil)
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles file: %w", err)
	}
	overrides, err := parseOverrides(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", path, err)
	}
	return NewRegistry(overrides)
}

func (r *profileRegistry) GetProfile(_ context.Context, category domain.Category) (domain.Profile, error) {
	p, ok := r.profiles[category]
	if !ok {
		return domain.Profile{}, fmt.Errorf("profile %s not found", category)
	}
	return cloneProfile(category, p), nil
}

func (r *profileRegistry) ListProfiles(_ context.Context) []domain.Profile {
	out := make([]domain.Profile, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, cloneProfile(c, r.profiles[c]))
	}
	return out
}

const (
	// MaxBaseline bounds baseline customers and spend so that revenue fits in int64.
	MaxBaseline = 1_000_000
	// MaxMultiplier bounds weekday and season multipliers.
	MaxMultiplier = 10
)

func validateProfile(p domain.Profile) error {
	if err := checkRange(p.BaselineCustomers, MaxBaseline); err != nil {
		return fmt.Errorf("baseline customers %w", err)
	}
	if err := checkRange(p.BaselineSpend, MaxBaseline); err != nil {
		return fmt.Errorf("baseline spend %w", err)
	}
	for i, f := range p.Weekday {
		if err := checkRange(f, MaxMultiplier); err != nil {
			return fmt.Errorf("weekday multiplier %d %w", i, err)
		}
	}
	for m, f := range p.Season {
		if m < time.January || m > time.December {
			return fmt.Errorf("season month %d out of range", m)
		}
		if err := checkRange(f, MaxMultiplier); err != nil {
			return fmt.Errorf("season multiplier for %s %w", m, err)
		}
	}
	return nil
}

// checkRange rejects NaN and values outside [0, limit].
func checkRange(f, limit float64) error {
	if !(f >= 0 && f <= limit) {
		return fmt.Errorf("must be between 0 and %g, got %g", limit, f)
	}
	return nil
}

// parseOverrides reads one section per category slug. Keys that are absent keep the built-in value.
func parseOverrides(cfg *ini.File) (map[domain.Category]domain.Profile, error) {
	overrides := make(map[domain.Category]domain.Profile)
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		if section.Name() == ini.DefaultSection {
			return nil, fmt.Errorf("keys outside a category section are not allowed: %s",
				strings.Join(section.KeyStrings(), ", "))
		}
		c, err := domain.ParseCategory(section.Name())
		if err != nil {
			return nil, err
		}
		p := builtin[c]

		if key, err := section.GetKey("customers"); err == nil {
			if p.BaselineCustomers, err = key.Float64(); err != nil {
				return nil, fmt.Errorf("[%s] customers: %w", c, err)
			}
		}
		if key, err := section.GetKey("spend"); err == nil {
			if p.BaselineSpend, err = key.Float64(); err != nil {
				return nil, fmt.Errorf("[%s] spend: %w", c, err)
			}
		}
		if key, err := section.GetKey("weekday"); err == nil {
			values, err := key.StrictFloat64s(",")
			if err != nil {
				return nil, fmt.Errorf("[%s] weekday: %w", c, err)
			}
			if len(values) != 7 {
				return nil, fmt.Errorf("[%s] weekday: expected 7 multipliers, got %d", c, len(values))
			}
			copy(p.Weekday[:], values)
		}
		if key, err := section.GetKey("season"); err == nil {
			season, err := parseSeason(key.String())
			if err != nil {
				return nil, fmt.Errorf("[%s] season: %w", c, err)
			}
			p.Season = season
		}
		overrides[c] = p
	}
	return overrides, nil
}

// parseSeason reads "12:1.2, 8:1.1" into a month map.
func parseSeason(s string) (map[time.Month]float64, error) {
	season := make(map[time.Month]float64)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		month, factor, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid entry %q, expected month:factor", item)
		}
		m, err := strconv.Atoi(strings.TrimSpace(month))
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", month, err)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(factor), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid factor %q: %w", factor, err)
		}
		season[time.Month(m)] = f
	}
	return season, nil
}
