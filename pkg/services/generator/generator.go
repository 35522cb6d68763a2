package generator

import (
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
)

const (
	viralThreshold      = 0.03
	competitorThreshold = 0.05
	badWeatherThreshold = 0.2
	badWeatherEffect    = 0.6
)

var weatherDistribution = []struct {
	weather    domain.Weather
	cumulative float64
}{
	{domain.WeatherFair, 0.6},
	{domain.WeatherCloudy, 0.9},
	{domain.WeatherRainy, 1.0},
}

type Generator struct {
	source Source
}

func NewGenerator(source Source) *Generator {
	return &Generator{source: source}
}

// Period returns the range covering `years` calendar years ending today:
// January 1st of now.Year()-(years-1) through the day of now.
func Period(years int, now time.Time) domain.TimePeriod {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(now.Year()-(years-1), time.January, 1, 0, 0, 0, 0, time.UTC)
	return domain.TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours()/24) + 1,
	}
}

// Generate produces one record per calendar day of the period in ascending order.
func (g *Generator) Generate(profile domain.Profile, period domain.TimePeriod) []domain.DailyRecord {
	records := make([]domain.DailyRecord, 0, period.Duration)
	for d := period.Start; !d.After(period.End); d = d.AddDate(0, 0, 1) {
		records = append(records, g.day(profile, d))
	}
	return records
}

func (g *Generator) day(profile domain.Profile, date time.Time) domain.DailyRecord {
	weather := g.weather()
	event := ClassifyEvent(g.source.Float64(), weather)
	multiplier := g.eventMultiplier(event)

	customers := int64(profile.BaselineCustomers *
		profile.WeekdayFactor(date.Weekday()) *
		profile.SeasonFactor(date.Month()) *
		multiplier *
		g.source.Uniform(0.9, 1.1))
	spend := int64(profile.BaselineSpend * g.source.Uniform(0.95, 1.05))

	return domain.DailyRecord{
		Date:            date,
		Weather:         weather,
		Event:           event,
		EventMultiplier: multiplier,
		Customers:       customers,
		AverageSpend:    spend,
		Revenue:         customers * spend,
	}
}

func (g *Generator) weather() domain.Weather {
	v := g.source.Float64()
	for _, w := range weatherDistribution {
		if v < w.cumulative {
			return w.weather
		}
	}
	return domain.WeatherRainy
}

func (g *Generator) eventMultiplier(event domain.Event) float64 {
	switch event {
	case domain.EventViral:
		return g.source.Uniform(1.8, 3.0)
	case domain.EventCompetitor:
		return g.source.Uniform(0.5, 0.7)
	case domain.EventBadWeather:
		return badWeatherEffect
	default:
		return 1.0
	}
}

// ClassifyEvent maps a single dice draw and the day's weather to an event.
// The bad-weather branch reuses the same draw, so it only fires for dice in [0.05, 0.2).
func ClassifyEvent(dice float64, weather domain.Weather) domain.Event {
	switch {
	case dice < viralThreshold:
		return domain.EventViral
	case dice < competitorThreshold:
		return domain.EventCompetitor
	case weather == domain.WeatherRainy && dice < badWeatherThreshold:
		return domain.EventBadWeather
	default:
		return domain.EventNormal
	}
}
