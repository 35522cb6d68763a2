package dataset

import (
	"slices"
	"strconv"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/dustin/go-humanize"
)

// Placeholder is shown wherever a value is absent.
const Placeholder = "-"

// TableRow is a display row of the working set without the prior-year join columns.
type TableRow struct {
	Date            string
	Event           string
	Weather         string
	EventMultiplier string
	Customers       string
	AverageSpend    string
	Revenue         string
	RevenueYoY      string
}

// TableRows renders the working set newest first.
func TableRows(records []domain.YoYRecord) []TableRow {
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			Date:            r.Date.Format(time.DateOnly),
			Event:           r.Event.Label(),
			Weather:         r.Weather.Label(),
			EventMultiplier: strconv.FormatFloat(r.EventMultiplier, 'f', 2, 64),
			Customers:       humanize.Comma(r.Customers),
			AverageSpend:    humanize.Comma(r.AverageSpend),
			Revenue:         humanize.Comma(r.Revenue),
			RevenueYoY:      FormatPercent(r.RevenueYoY),
		})
	}
	slices.Reverse(rows)
	return rows
}
