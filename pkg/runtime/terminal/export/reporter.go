package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/mattn/go-runewidth"
)

type TableConfig struct {
	DateWidth    int
	EventWidth   int
	WeatherWidth int
	NumberWidth  int
	Rows         int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:    10,
		EventWidth:   28,
		WeatherWidth: 8,
		NumberWidth:  12,
		Rows:         20,
	}
}

// Reporter prints the dataset summary followed by the newest rows as a fixed-width table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// WithRows returns a copy of the reporter limited to n table rows.
func (c *Reporter) WithRows(n int) *Reporter {
	cfg := c.config
	cfg.Rows = n
	return &Reporter{writer: c.writer, config: cfg}
}

type reportView struct {
	Dataset *domain.Dataset
	Revenue string
	YoY     string
	Rows    []dataset.TableRow
	Total   int
}

func (c *Reporter) Handle(ds *domain.Dataset) error {
	rows := dataset.TableRows(ds.Records)
	total := len(rows)
	if c.config.Rows > 0 && len(rows) > c.config.Rows {
		rows = rows[:c.config.Rows]
	}

	funcMap := template.FuncMap{
		"formatRow": func(date, event, weather, customers, spend, revenue, yoy string) string {
			return fmt.Sprintf("| %-*s | %s | %s | %*s | %*s | %*s | %*s |",
				c.config.DateWidth, date,
				runewidth.FillRight(event, c.config.EventWidth),
				runewidth.FillRight(weather, c.config.WeatherWidth),
				c.config.NumberWidth, customers,
				c.config.NumberWidth, spend,
				c.config.NumberWidth, revenue,
				c.config.NumberWidth, yoy)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DateWidth+2),
				strings.Repeat("-", c.config.EventWidth+2),
				strings.Repeat("-", c.config.WeatherWidth+2),
				strings.Repeat("-", c.config.NumberWidth+2),
				strings.Repeat("-", c.config.NumberWidth+2),
				strings.Repeat("-", c.config.NumberWidth+2),
				strings.Repeat("-", c.config.NumberWidth+2))
		},
	}

	tmpl := `
{{.Dataset.Params.Category.Label}} ({{.Dataset.Period.Duration}} days generated)

Period: {{.Dataset.Period.Start.Format "2006-01-02"}} to {{.Dataset.Period.End.Format "2006-01-02"}}
Dataset: {{.Dataset.ID}}

昨日の売上:       {{.Revenue}} ({{.YoY}})
昨日の客数:       {{.Dataset.Summary.LatestCustomers}}名
イベント発生総数: {{.Dataset.Summary.EventDays}}件

{{separator}}
{{formatRow "date" "event" "weather" "customers" "spend" "revenue" "yoy"}}
{{separator}}
{{range .Rows}}{{formatRow .Date .Event .Weather .Customers .AverageSpend .Revenue .RevenueYoY}}
{{end}}{{separator}}
showing {{len .Rows}} of {{.Total}} rows
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, reportView{
		Dataset: ds,
		Revenue: dataset.FormatYen(ds.Summary.LatestRevenue),
		YoY:     dataset.FormatPercent(ds.Summary.LatestRevenueYoY),
		Rows:    rows,
		Total:   total,
	})
}
