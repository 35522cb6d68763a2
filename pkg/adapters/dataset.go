package adapters

import (
	"strconv"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/api"
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func MapDomainProfileToAPICategory(p domain.Profile) api.Category {
	season := make(map[string]float64, len(p.Season))
	for m, f := range p.Season {
		season[strconv.Itoa(int(m))] = f
	}
	return api.Category{
		Slug:              string(p.Category),
		Label:             p.Category.Label(),
		BaselineCustomers: p.BaselineCustomers,
		BaselineSpend:     p.BaselineSpend,
		Weekday:           p.Weekday[:],
		Season:            season,
	}
}

func MapDomainDatasetToAPI(ds *domain.Dataset) api.Dataset {
	records := make([]api.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		records = append(records, MapDomainRecordToAPI(r))
	}
	return api.Dataset{
		ID: ds.ID,
		Params: api.Params{
			Category: string(ds.Params.Category),
			Years:    ds.Params.Years,
			MaxRows:  ds.Params.MaxRows,
			Seed:     ds.Params.Seed,
		},
		Period: api.Period{
			Start: ds.Period.Start.Format(time.DateOnly),
			End:   ds.Period.End.Format(time.DateOnly),
			Days:  ds.Period.Duration,
		},
		Summary: api.Summary{
			LatestDate:       ds.Summary.LatestDate.Format(time.DateOnly),
			LatestRevenue:    ds.Summary.LatestRevenue,
			LatestRevenueYoY: optionalFloat(ds.Summary.LatestRevenueYoY),
			LatestCustomers:  ds.Summary.LatestCustomers,
			EventDays:        ds.Summary.EventDays,
		},
		Records: records,
	}
}

func MapDomainRecordToAPI(r domain.YoYRecord) api.Record {
	return api.Record{
		Date:            r.Date.Format(time.DateOnly),
		Event:           string(r.Event),
		EventLabel:      r.Event.Label(),
		Weather:         string(r.Weather),
		WeatherLabel:    r.Weather.Label(),
		EventMultiplier: r.EventMultiplier,
		Customers:       r.Customers,
		AverageSpend:    r.AverageSpend,
		Revenue:         r.Revenue,
		PriorDate:       r.PriorDate.Format(time.DateOnly),
		PriorCustomers:  r.PriorCustomers,
		PriorRevenue:    r.PriorRevenue,
		RevenueYoY:      optionalFloat(r.RevenueYoY),
	}
}

func optionalFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
