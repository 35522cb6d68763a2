package adapters

import (
	"database/sql"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/store"
)

func storeMatch(day time.Time, customers, revenue int64) store.PriorYearMatch {
	return store.PriorYearMatch{
		Day:            day,
		PriorCustomers: sql.NullInt64{Int64: customers, Valid: true},
		PriorRevenue:   sql.NullInt64{Int64: revenue, Valid: true},
	}
}
