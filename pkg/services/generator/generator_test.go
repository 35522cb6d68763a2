package generator

import (
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws in order.
type scriptedSource struct {
	floats   []float64
	uniforms []float64
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Uniform(lo, hi float64) float64 {
	v := s.uniforms[0]
	s.uniforms = s.uniforms[1:]
	return v
}

func profile(t *testing.T, c domain.Category) domain.Profile {
	t.Helper()
	p, ok := profiles.Builtin()[c]
	require.True(t, ok)
	return p
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyEvent_Boundaries(t *testing.T) {
	tests := []struct {
		dice   float64
		rainy  domain.Event
		others domain.Event
	}{
		{0.0, domain.EventViral, domain.EventViral},
		{0.0299, domain.EventViral, domain.EventViral},
		{0.03, domain.EventCompetitor, domain.EventCompetitor},
		{0.0499, domain.EventCompetitor, domain.EventCompetitor},
		{0.05, domain.EventBadWeather, domain.EventNormal},
		{0.199, domain.EventBadWeather, domain.EventNormal},
		{0.2, domain.EventNormal, domain.EventNormal},
		{0.99, domain.EventNormal, domain.EventNormal},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("dice=%v", tc.dice), func(t *testing.T) {
			assert.Equal(t, tc.rainy, ClassifyEvent(tc.dice, domain.WeatherRainy))
			assert.Equal(t, tc.others, ClassifyEvent(tc.dice, domain.WeatherFair))
			assert.Equal(t, tc.others, ClassifyEvent(tc.dice, domain.WeatherCloudy))
		})
	}
}

func TestPeriod(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, time.Local)

	p := Period(2, now)
	assert.Equal(t, day(2025, time.January, 1), p.Start)
	assert.Equal(t, day(2026, time.October, 19), p.End)
	assert.Equal(t, 365+292, p.Duration)

	p = Period(1, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, p.Start, p.End)
	assert.Equal(t, 1, p.Duration)
}

func TestGenerate_CafeMondayExample(t *testing.T) {
	// 2026-04-06 is a Monday in a month without a seasonal factor.
	date := day(2026, time.April, 6)
	require.Equal(t, time.Monday, date.Weekday())

	src := &scriptedSource{
		floats:   []float64{0.1, 0.5}, // fair weather, normal event
		uniforms: []float64{1.0, 1.0}, // jitter held at 1.0
	}
	records := NewGenerator(src).Generate(profile(t, domain.CategoryCafe), domain.TimePeriod{
		Start: date, End: date, Duration: 1,
	})

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, date, r.Date)
	assert.Equal(t, domain.WeatherFair, r.Weather)
	assert.Equal(t, domain.EventNormal, r.Event)
	assert.Equal(t, 1.0, r.EventMultiplier)
	assert.Equal(t, int64(80), r.Customers)
	assert.Equal(t, int64(850), r.AverageSpend)
	assert.Equal(t, int64(68000), r.Revenue)
}

func TestGenerate_DrawOrderAndMultipliers(t *testing.T) {
	tests := []struct {
		name       string
		floats     []float64
		uniforms   []float64
		weather    domain.Weather
		event      domain.Event
		multiplier float64
		customers  int64
	}{
		{
			name:     "viral draws its multiplier first",
			floats:   []float64{0.95, 0.01},
			uniforms: []float64{2.0, 1.0, 1.0},
			weather:  domain.WeatherRainy, event: domain.EventViral, multiplier: 2.0, customers: 160,
		},
		{
			name:     "competitor",
			floats:   []float64{0.7, 0.04},
			uniforms: []float64{0.5, 1.0, 1.0},
			weather:  domain.WeatherCloudy, event: domain.EventCompetitor, multiplier: 0.5, customers: 40,
		},
		{
			name:     "bad weather is fixed",
			floats:   []float64{0.95, 0.1},
			uniforms: []float64{1.0, 1.0},
			weather:  domain.WeatherRainy, event: domain.EventBadWeather, multiplier: 0.6, customers: 48,
		},
		{
			name:     "jitter truncates toward zero",
			floats:   []float64{0.0, 0.5},
			uniforms: []float64{0.9, 1.0},
			weather:  domain.WeatherFair, event: domain.EventNormal, multiplier: 1.0, customers: 72,
		},
	}
	date := day(2026, time.April, 6)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{floats: tc.floats, uniforms: tc.uniforms}
			records := NewGenerator(src).Generate(profile(t, domain.CategoryCafe), domain.TimePeriod{
				Start: date, End: date, Duration: 1,
			})
			require.Len(t, records, 1)
			r := records[0]
			assert.Equal(t, tc.weather, r.Weather)
			assert.Equal(t, tc.event, r.Event)
			assert.InDelta(t, tc.multiplier, r.EventMultiplier, 1e-9)
			assert.Equal(t, tc.customers, r.Customers)
			assert.Empty(t, src.floats)
			assert.Empty(t, src.uniforms)
		})
	}
}

func TestGenerate_SeasonAndWeekday(t *testing.T) {
	// 2025-12-06 is a Saturday in December: 80 * 1.5 * 1.2 = 144.
	date := day(2025, time.December, 6)
	src := &scriptedSource{floats: []float64{0.1, 0.5}, uniforms: []float64{1.0, 1.0}}
	records := NewGenerator(src).Generate(profile(t, domain.CategoryCafe), domain.TimePeriod{
		Start: date, End: date, Duration: 1,
	})
	require.Len(t, records, 1)
	assert.Equal(t, int64(144), records[0].Customers)
}

func TestGenerate_Properties(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	for _, c := range domain.Categories {
		t.Run(string(c), func(t *testing.T) {
			period := Period(2, now)
			records := NewGenerator(NewRandSource(42)).Generate(profile(t, c), period)

			require.Len(t, records, period.Duration)
			assert.Equal(t, day(2025, time.January, 1), records[0].Date)
			assert.Equal(t, day(2026, time.October, 19), records[len(records)-1].Date)

			for i, r := range records {
				assert.Equal(t, r.Customers*r.AverageSpend, r.Revenue)
				assert.GreaterOrEqual(t, r.Customers, int64(0))
				assert.GreaterOrEqual(t, r.AverageSpend, int64(0))
				if i > 0 {
					assert.Equal(t, records[i-1].Date.AddDate(0, 0, 1), r.Date)
				}
			}
		})
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	period := Period(1, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	p := profile(t, domain.CategoryHotel)

	a := NewGenerator(NewRandSource(7)).Generate(p, period)
	b := NewGenerator(NewRandSource(7)).Generate(p, period)
	c := NewGenerator(NewRandSource(8)).Generate(p, period)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRandSource_Ranges(t *testing.T) {
	src := NewRandSource(1)
	for i := 0; i < 1000; i++ {
		f := src.Float64()
		assert.True(t, f >= 0 && f < 1)
		u := src.Uniform(0.9, 1.1)
		assert.True(t, u >= 0.9 && u < 1.1)
	}
}
