package files

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
)

// Header lists the export columns in order.
var Header = []string{
	"date",
	"event",
	"weather",
	"event_multiplier",
	"customers",
	"average_spend",
	"revenue",
	"prior_date",
	"prior_customers",
	"prior_revenue",
	"revenue_yoy_pct",
}

// FileName returns the download name for a category, e.g. dummy_cafe.csv.
func FileName(category domain.Category, ext string) string {
	return fmt.Sprintf("dummy_%s.%s", category, ext)
}

// WriteCSV writes the working set in ascending date order. Absent values are empty cells.
func WriteCSV(w io.Writer, ds *domain.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range ds.Records {
		if err := cw.Write(marshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshalRecord(r domain.YoYRecord) []string {
	return []string{
		r.Date.Format(time.DateOnly),
		string(r.Event),
		string(r.Weather),
		strconv.FormatFloat(r.EventMultiplier, 'f', -1, 64),
		strconv.FormatInt(r.Customers, 10),
		strconv.FormatInt(r.AverageSpend, 10),
		strconv.FormatInt(r.Revenue, 10),
		r.PriorDate.Format(time.DateOnly),
		optionalInt(r.PriorCustomers),
		optionalInt(r.PriorRevenue),
		optionalPercent(r),
	}
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optionalPercent(r domain.YoYRecord) string {
	if !r.RevenueYoY.Valid {
		return ""
	}
	return r.RevenueYoY.Decimal.StringFixed(1)
}
