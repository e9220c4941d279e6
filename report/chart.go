package report

import (
	"fmt"
	"io"
	"statesearch/searcher"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderLevels writes an HTML page with a bar chart of states discovered per depth.
func RenderLevels(w io.Writer, title string, metric searcher.SearchMetric) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%s, %d expanded, %d duplicates", metric.Outcome, metric.Expanded, metric.Duplicates),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "depth"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "states"}),
	)

	depths := make([]string, 0, len(metric.Levels))
	items := make([]opts.BarData, 0, len(metric.Levels))
	for depth, states := range metric.Levels {
		depths = append(depths, fmt.Sprintf("%d", depth))
		items = append(items, opts.BarData{Value: states})
	}
	bar.SetXAxis(depths).AddSeries("discovered", items)

	page := components.NewPage()
	page.AddCharts(bar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render levels chart: %w", err)
	}
	return nil
}
