package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dataset is the result of a single build: the row-limited working set plus its summary.
type Dataset struct {
	ID      string
	Params  Params
	Period  TimePeriod
	Records []YoYRecord
	Summary Summary
}

// TimePeriod represents the generated date range, both ends inclusive
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// Summary holds the headline figures of the working set.
type Summary struct {
	LatestDate       time.Time
	LatestRevenue    int64
	LatestRevenueYoY decimal.NullDecimal
	LatestCustomers  int64
	EventDays        int
}
