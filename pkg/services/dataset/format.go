package dataset

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatPercent renders a YoY percentage with one decimal, or the placeholder.
func FormatPercent(pct decimal.NullDecimal) string {
	if !pct.Valid {
		return Placeholder
	}
	return pct.Decimal.StringFixed(1) + "%"
}

// FormatYen renders an amount as ¥1,234.
func FormatYen(v int64) string {
	return "¥" + humanize.Comma(v)
}
