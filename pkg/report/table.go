// Package report renders a project.Result as terminal tables and HTML
// charts for the CLI, and supports diffing two serialized reports.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/plexus-metrics/plexus/pkg/project"
)

const (
	maintainabilityGood = 85.0
	maintainabilityFair = 65.0
)

// RenderModuleTable renders one row per module plus a project summary
// footer. Maintainability is colored green (85 and above), yellow (65 and
// above) or red, unless noColor disables it.
func RenderModuleTable(result *project.Result, noColor bool) string {
	color.NoColor = noColor //nolint:reassign // CLI-scoped override of the library global

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Module", "LOC", "Cyclomatic", "Effort", "Maintainability"})

	for _, r := range result.Reports {
		tbl.AppendRow(table.Row{
			r.Path,
			humanize.Comma(int64(r.LOC)),
			fmt.Sprintf("%.2f", r.Cyclomatic),
			humanize.Comma(int64(r.Effort)),
			colorizeMaintainability(r.Maintainability),
		})
	}

	tbl.AppendFooter(table.Row{
		"TOTAL", "", "",
		fmt.Sprintf("density=%.1f%% changeCost=%.1f%% coreSize=%.1f%%",
			result.FirstOrderDensity, result.ChangeCost, result.CoreSize),
		colorizeMaintainability(result.Maintainability),
	})

	return tbl.Render()
}

func colorizeMaintainability(mi float64) string {
	text := fmt.Sprintf("%.2f", mi)

	switch {
	case mi >= maintainabilityGood:
		return color.GreenString(text)
	case mi >= maintainabilityFair:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}
