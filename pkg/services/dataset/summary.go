package dataset

import (
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
)

// Summarize reports the latest day and the number of non-normal event days.
func Summarize(records []domain.YoYRecord) domain.Summary {
	var s domain.Summary
	if len(records) == 0 {
		return s
	}
	latest := records[len(records)-1]
	s.LatestDate = latest.Date
	s.LatestRevenue = latest.Revenue
	s.LatestRevenueYoY = latest.RevenueYoY
	s.LatestCustomers = latest.Customers
	for _, r := range records {
		if r.Event != domain.EventNormal {
			s.EventDays++
		}
	}
	return s
}
