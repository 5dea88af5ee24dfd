package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/plexus-metrics/plexus/pkg/project"
)

const (
	chartWidth  = "100%"
	chartHeight = "500px"
)

// RenderMaintainabilityChart writes an HTML bar chart of per-module
// maintainability index to w, colored by the same thresholds as
// RenderModuleTable.
func RenderMaintainabilityChart(result *project.Result, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Maintainability by Module"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Maintainability Index"}),
	)

	labels := make([]string, len(result.Reports))
	data := make([]opts.BarData, len(result.Reports))

	for i, r := range result.Reports {
		labels[i] = r.Path
		data[i] = opts.BarData{
			Value: r.Maintainability,
			ItemStyle: &opts.ItemStyle{
				Color: maintainabilityColor(r.Maintainability),
			},
		}
	}

	bar.SetXAxis(labels).AddSeries("Maintainability", data)

	return bar.Render(w)
}

func maintainabilityColor(mi float64) string {
	switch {
	case mi >= maintainabilityGood:
		return "#91cc75"
	case mi >= maintainabilityFair:
		return "#fac858"
	default:
		return "#ee6666"
	}
}
