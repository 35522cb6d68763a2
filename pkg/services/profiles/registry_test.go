package profiles

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistry_Builtin(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	ctx := context.Background()
	profiles := reg.ListProfiles(ctx)
	require.Len(t, profiles, len(domain.Categories))
	for i, p := range profiles {
		assert.Equal(t, domain.Categories[i], p.Category)
	}

	cafe, err := reg.GetProfile(ctx, domain.CategoryCafe)
	require.NoError(t, err)
	assert.Equal(t, 80.0, cafe.BaselineCustomers)
	assert.Equal(t, 850.0, cafe.BaselineSpend)
	assert.Equal(t, [7]float64{1, 1, 1, 1, 1, 1.5, 1.3}, cafe.Weekday)
	assert.Equal(t, 1.2, cafe.SeasonFactor(time.December))
	assert.Equal(t, 1.0, cafe.SeasonFactor(time.April))
}

func TestRegistry_GetProfileReturnsCopy(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	ctx := context.Background()
	hotel, err := reg.GetProfile(ctx, domain.CategoryHotel)
	require.NoError(t, err)
	hotel.Season[time.May] = 99

	again, err := reg.GetProfile(ctx, domain.CategoryHotel)
	require.NoError(t, err)
	assert.Equal(t, 2.0, again.Season[time.May])
}

func TestNewRegistry_RejectsInvalidOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[domain.Category]domain.Profile
		msg       string
	}{
		{
			name:      "unknown category",
			overrides: map[domain.Category]domain.Profile{"bakery": {}},
			msg:       "unknown category",
		},
		{
			name:      "negative baseline",
			overrides: map[domain.Category]domain.Profile{domain.CategoryCafe: {BaselineCustomers: -1}},
			msg:       "baseline customers",
		},
		{
			name: "negative weekday",
			overrides: map[domain.Category]domain.Profile{domain.CategoryCafe: {
				BaselineCustomers: 1, Weekday: [7]float64{1, 1, -1, 1, 1, 1, 1},
			}},
			msg: "weekday multiplier 2",
		},
		{
			name: "nan weekday",
			overrides: map[domain.Category]domain.Profile{domain.CategoryCafe: {
				BaselineCustomers: 1, Weekday: [7]float64{1, 1, 1, math.NaN(), 1, 1, 1},
			}},
			msg: "weekday multiplier 3",
		},
		{
			name: "infinite season",
			overrides: map[domain.Category]domain.Profile{domain.CategoryCafe: {
				Season: map[time.Month]float64{time.May: math.Inf(1)},
			}},
			msg: "season multiplier for May",
		},
		{
			name:      "baseline too large",
			overrides: map[domain.Category]domain.Profile{domain.CategoryCafe: {BaselineCustomers: MaxBaseline + 1}},
			msg:       "baseline customers",
		},
		{
			name: "month out of range",
			overrides: map[domain.Category]domain.Profile{domain.CategoryCafe: {
				Season: map[time.Month]float64{13: 1.1},
			}},
			msg: "season month 13",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.overrides)
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestNewRegistryFromFile(t *testing.T) {
	path := writeProfiles(t, `
[cafe]
customers = 120
weekday = 1,1,1,1,1,2,2
season = 12:1.5, 1:0.8

[ホテル]
spend = 20000
`)
	reg, err := NewRegistryFromFile(path)
	require.NoError(t, err)

	ctx := context.Background()
	cafe, err := reg.GetProfile(ctx, domain.CategoryCafe)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cafe.BaselineCustomers)
	assert.Equal(t, 850.0, cafe.BaselineSpend)
	assert.Equal(t, [7]float64{1, 1, 1, 1, 1, 2, 2}, cafe.Weekday)
	assert.Equal(t, map[time.Month]float64{time.December: 1.5, time.January: 0.8}, cafe.Season)

	hotel, err := reg.GetProfile(ctx, domain.CategoryHotel)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, hotel.BaselineSpend)
	assert.Equal(t, 100.0, hotel.BaselineCustomers)
}

func TestNewRegistryFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"unknown section", "[bakery]\ncustomers = 1\n", "unknown category"},
		{"short weekday", "[cafe]\nweekday = 1,1,1\n", "expected 7 multipliers"},
		{"bad season", "[cafe]\nseason = december\n", "expected month:factor"},
		{"bad number", "[cafe]\ncustomers = many\n", "customers"},
		{"malformed weekday", "[cafe]\nweekday = 1,1,1.x,1,1,1.5,1.3\n", "weekday"},
		{"nan customers", "[cafe]\ncustomers = NaN\n", "baseline customers must be between"},
		{"infinite spend", "[cafe]\nspend = +Inf\n", "baseline spend must be between"},
		{"overflowing spend", "[cafe]\nspend = 1e300\n", "baseline spend must be between"},
		{"nan season", "[cafe]\nseason = 12:NaN\n", "season multiplier for December"},
		{"keys outside section", "customers = 10\n[cafe]\nspend = 900\n", "keys outside a category section"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistryFromFile(writeProfiles(t, tc.content))
			assert.ErrorContains(t, err, tc.msg)
		})
	}

	_, err := NewRegistryFromFile(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestNewRegistryFromFile_EmptyPath(t *testing.T) {
	reg, err := NewRegistryFromFile("")
	require.NoError(t, err)
	assert.Len(t, reg.ListProfiles(context.Background()), 9)
}

func TestNewRegistry_LargestProfileKeepsRevenueInRange(t *testing.T) {
	var weekday [7]float64
	for i := range weekday {
		weekday[i] = MaxMultiplier
	}
	reg, err := NewRegistry(map[domain.Category]domain.Profile{domain.CategoryCafe: {
		BaselineCustomers: MaxBaseline,
		BaselineSpend:     MaxBaseline,
		Weekday:           weekday,
		Season:            map[time.Month]float64{time.January: MaxMultiplier},
	}})
	require.NoError(t, err)

	cafe, err := reg.GetProfile(context.Background(), domain.CategoryCafe)
	require.NoError(t, err)

	// Viral multiplier and jitter at their upper bounds.
	customers := cafe.BaselineCustomers * MaxMultiplier * MaxMultiplier * 3.0 * 1.1
	spend := cafe.BaselineSpend * 1.05
	assert.Less(t, customers*spend, float64(math.MaxInt64))
}
