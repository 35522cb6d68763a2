package profiles

import (
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
)

var builtin = map[domain.Category]domain.Profile{
	domain.CategoryCafe: {
		BaselineCustomers: 80, BaselineSpend: 850,
		Weekday: [7]float64{1, 1, 1, 1, 1, 1.5, 1.3},
		Season:  map[time.Month]float64{time.December: 1.2, time.August: 1.1},
	},
	domain.CategoryIzakaya: {
		BaselineCustomers: 40, BaselineSpend: 4500,
		Weekday: [7]float64{0.7, 0.8, 0.9, 1.1, 2.2, 2.5, 0.5},
		Season:  map[time.Month]float64{time.December: 2.5, time.March: 1.5},
	},
	domain.CategoryApparel: {
		BaselineCustomers: 50, BaselineSpend: 12000,
		Weekday: [7]float64{0.8, 0.8, 0.8, 0.8, 1.2, 2.5, 2.0},
		Season:  map[time.Month]float64{time.January: 1.8, time.July: 1.5},
	},
	domain.CategoryConvenienceStore: {
		BaselineCustomers: 800, BaselineSpend: 650,
		Weekday: [7]float64{1, 1, 1, 1, 1.1, 1.2, 1},
		Season:  map[time.Month]float64{time.August: 1.2},
	},
	domain.CategoryGasStation: {
		BaselineCustomers: 150, BaselineSpend: 5500,
		Weekday: [7]float64{0.9, 0.9, 0.9, 1, 1.1, 1.5, 1.4},
		Season:  map[time.Month]float64{time.May: 1.3, time.August: 1.4},
	},
	domain.CategorySupermarket: {
		BaselineCustomers: 1200, BaselineSpend: 2800,
		Weekday: [7]float64{1, 0.9, 1, 0.9, 1.1, 1.6, 1.8},
		Season:  map[time.Month]float64{time.December: 1.5},
	},
	domain.CategoryShoppingMall: {
		BaselineCustomers: 5000, BaselineSpend: 5500,
		Weekday: [7]float64{0.7, 0.7, 0.7, 0.7, 1.0, 3.0, 2.5},
		Season:  map[time.Month]float64{time.January: 1.5, time.August: 1.5},
	},
	domain.CategoryFamilyRestaurant: {
		BaselineCustomers: 200, BaselineSpend: 1400,
		Weekday: [7]float64{0.8, 0.8, 0.9, 0.9, 1.2, 1.8, 2.0},
		Season:  map[time.Month]float64{time.August: 1.3, time.December: 1.2},
	},
	domain.CategoryHotel: {
		BaselineCustomers: 100, BaselineSpend: 18000,
		Weekday: [7]float64{0.6, 0.5, 0.6, 0.7, 1.2, 2.2, 0.8},
		Season:  map[time.Month]float64{time.May: 2.0, time.August: 2.5, time.December: 1.8},
	},
}

// Builtin returns a copy of the built-in profile table.
func Builtin() map[domain.Category]domain.Profile {
	out := make(map[domain.Category]domain.Profile, len(builtin))
	for c, p := range builtin {
		out[c] = cloneProfile(c, p)
	}
	return out
}

func cloneProfile(c domain.Category, p domain.Profile) domain.Profile {
	season := make(map[time.Month]float64, len(p.Season))
	for m, f := range p.Season {
		season[m] = f
	}
	p.Category = c
	p.Season = season
	return p
}
