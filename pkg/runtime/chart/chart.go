package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderRevenue writes a standalone HTML page with the revenue line of the working set.
func RenderRevenue(w io.Writer, ds *domain.Dataset) error {
	if len(ds.Records) == 0 {
		return fmt.Errorf("dataset %s has no records", ds.ID)
	}
	dates := make([]string, 0, len(ds.Records))
	revenue := make([]opts.LineData, 0, len(ds.Records))
	for _, r := range ds.Records {
		dates = append(dates, r.Date.Format(time.DateOnly))
		revenue = append(revenue, opts.LineData{Value: r.Revenue})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "売上推移",
			Width:     "100%",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "📈 売上推移グラフ",
			Subtitle: fmt.Sprintf("%s / %s – %s", ds.Params.Category.Label(), dates[0], dates[len(dates)-1]),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(dates).AddSeries("売上", revenue)

	return line.Render(w)
}
