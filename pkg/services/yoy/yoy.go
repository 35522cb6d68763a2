package yoy

import (
	"context"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Augmenter attaches prior-year figures to the working set.
type Augmenter interface {
	Augment(ctx context.Context, full, working []domain.DailyRecord) ([]domain.YoYRecord, error)
}

type memoryAugmenter struct{}

// NewAugmenter returns the in-process map join.
func NewAugmenter() Augmenter {
	return memoryAugmenter{}
}

// PriorYearDate subtracts one calendar year; February 29th maps to February 28th.
func PriorYearDate(d time.Time) time.Time {
	y, m, day := d.Date()
	if m == time.February && day == 29 {
		day = 28
	}
	return time.Date(y-1, m, day, 0, 0, 0, 0, d.Location())
}

// Truncate keeps the n chronologically latest records of an ascending slice.
func Truncate(records []domain.DailyRecord, n int) []domain.DailyRecord {
	if n < 0 {
		n = 0
	}
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

// Augment left-joins working against full on PriorYearDate(date) == date.
// full must be the untruncated set so that rows outside the working window still match.
func (memoryAugmenter) Augment(_ context.Context, full, working []domain.DailyRecord) ([]domain.YoYRecord, error) {
	byDate := make(map[time.Time]domain.DailyRecord, len(full))
	for _, r := range full {
		byDate[dayKey(r.Date)] = r
	}

	out := make([]domain.YoYRecord, 0, len(working))
	for _, r := range working {
		rec := domain.YoYRecord{DailyRecord: r, PriorDate: PriorYearDate(r.Date)}
		if prior, ok := byDate[dayKey(rec.PriorDate)]; ok {
			rec = WithPrior(rec, prior.Customers, prior.Revenue)
		}
		out = append(out, rec)
	}
	return out, nil
}

// WithPrior sets the prior-year fields and the derived percentage.
func WithPrior(rec domain.YoYRecord, customers, revenue int64) domain.YoYRecord {
	rec.PriorCustomers = &customers
	rec.PriorRevenue = &revenue
	rec.RevenueYoY = Percent(rec.Revenue, revenue)
	return rec
}

// Percent returns round(100 * current / prior, 1) rounding half to even.
// The result is invalid when prior is zero.
func Percent(current, prior int64) decimal.NullDecimal {
	if prior == 0 {
		return decimal.NullDecimal{}
	}
	pct := decimal.NewFromInt(current).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(prior), 16).
		RoundBank(1)
	return decimal.NewNullDecimal(pct)
}

func dayKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
