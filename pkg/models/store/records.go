package store

import (
	"database/sql"
	"time"
)

// DayRecord is the projection of a generated day needed for the prior-year join.
type DayRecord struct {
	Day       time.Time
	PriorDay  time.Time
	Customers int64
	Revenue   int64
}

// PriorYearMatch is one working-set day and the figures of its prior-year day, if any.
type PriorYearMatch struct {
	Day            time.Time
	PriorCustomers sql.NullInt64
	PriorRevenue   sql.NullInt64
}
