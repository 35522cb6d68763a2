package domain

import "time"

// Profile holds the static demand parameters of a category.
type Profile struct {
	Category          Category
	BaselineCustomers float64
	BaselineSpend     float64
	// Weekday multipliers, Monday first.
	Weekday [7]float64
	Season  map[time.Month]float64
}

// SeasonFactor returns the seasonal multiplier of m, 1.0 when the month is not listed.
func (p Profile) SeasonFactor(m time.Month) float64 {
	if f, ok := p.Season[m]; ok {
		return f
	}
	return 1.0
}

// WeekdayFactor returns the multiplier for d, indexing Monday as 0.
func (p Profile) WeekdayFactor(d time.Weekday) float64 {
	return p.Weekday[WeekdayIndex(d)]
}

// WeekdayIndex converts time.Weekday (Sunday=0) into a Monday-first index.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
