package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Weather string

const (
	WeatherFair   Weather = "fair"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
)

var weatherLabels = map[Weather]string{
	WeatherFair:   "☀️ 晴れ",
	WeatherCloudy: "☁️ 曇り",
	WeatherRainy:  "☔ 雨",
}

func (w Weather) Label() string {
	if l, ok := weatherLabels[w]; ok {
		return l
	}
	return string(w)
}

type Event string

const (
	EventNormal     Event = "normal"
	EventViral      Event = "viral"
	EventCompetitor Event = "competitor"
	EventBadWeather Event = "bad_weather"
)

var eventLabels = map[Event]string{
	EventNormal:     "通常営業",
	EventViral:      "🎉 SNSバズり・メディア露出",
	EventCompetitor: "⚠️ 周辺競合セール・近隣工事",
	EventBadWeather: "❄️ 悪天候による客足ダウン",
}

func (e Event) Label() string {
	if l, ok := eventLabels[e]; ok {
		return l
	}
	return string(e)
}

// DailyRecord is one synthetic business day. Revenue is always Customers * AverageSpend.
type DailyRecord struct {
	Date            time.Time
	Weather         Weather
	Event           Event
	EventMultiplier float64
	Customers       int64
	AverageSpend    int64
	Revenue         int64
}

// YoYRecord pairs a record with the record dated one calendar year earlier, if any.
type YoYRecord struct {
	DailyRecord
	PriorDate      time.Time
	PriorCustomers *int64
	PriorRevenue   *int64
	RevenueYoY     decimal.NullDecimal
}

func (r YoYRecord) HasPrior() bool {
	return r.PriorRevenue != nil
}
