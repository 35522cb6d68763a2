package adapters

import (
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/models/store"
	"github.com/de-tools/dummy-atlas/pkg/services/yoy"
)

func MapDomainRecordToStoreDayRecord(record domain.DailyRecord) store.DayRecord {
	return store.DayRecord{
		Day:       record.Date,
		PriorDay:  yoy.PriorYearDate(record.Date),
		Customers: record.Customers,
		Revenue:   record.Revenue,
	}
}

func MapStorePriorYearMatchToDomain(record domain.DailyRecord, match store.PriorYearMatch) domain.YoYRecord {
	rec := domain.YoYRecord{DailyRecord: record, PriorDate: yoy.PriorYearDate(record.Date)}
	if match.PriorCustomers.Valid && match.PriorRevenue.Valid {
		rec = yoy.WithPrior(rec, match.PriorCustomers.Int64, match.PriorRevenue.Int64)
	}
	return rec
}
