package api

type Category struct {
	Slug              string             `json:"slug"`
	Label             string             `json:"label"`
	BaselineCustomers float64            `json:"baseline_customers"`
	BaselineSpend     float64            `json:"baseline_spend"`
	Weekday           []float64          `json:"weekday"`
	Season            map[string]float64 `json:"season"`
}

type Params struct {
	Category string `json:"category"`
	Years    int    `json:"years"`
	MaxRows  int    `json:"max_rows"`
	Seed     uint64 `json:"seed"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type Summary struct {
	LatestDate       string   `json:"latest_date"`
	LatestRevenue    int64    `json:"latest_revenue"`
	LatestRevenueYoY *float64 `json:"latest_revenue_yoy_pct"`
	LatestCustomers  int64    `json:"latest_customers"`
	EventDays        int      `json:"event_days"`
}

type Record struct {
	Date            string   `json:"date"`
	Event           string   `json:"event"`
	EventLabel      string   `json:"event_label"`
	Weather         string   `json:"weather"`
	WeatherLabel    string   `json:"weather_label"`
	EventMultiplier float64  `json:"event_multiplier"`
	Customers       int64    `json:"customers"`
	AverageSpend    int64    `json:"average_spend"`
	Revenue         int64    `json:"revenue"`
	PriorDate       string   `json:"prior_date"`
	PriorCustomers  *int64   `json:"prior_customers"`
	PriorRevenue    *int64   `json:"prior_revenue"`
	RevenueYoY      *float64 `json:"revenue_yoy_pct"`
}

type Dataset struct {
	ID      string   `json:"id"`
	Params  Params   `json:"params"`
	Period  Period   `json:"period"`
	Summary Summary  `json:"summary"`
	Records []Record `json:"records"`
}
