package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexus-metrics/plexus/pkg/metrics"
	"github.com/plexus-metrics/plexus/pkg/project"
	"github.com/plexus-metrics/plexus/pkg/report"
)

func sampleResult() *project.Result {
	return &project.Result{
		Reports: []*metrics.ModuleReport{
			{Path: "a.js", LOC: 10, Cyclomatic: 2, Maintainability: 90},
			{Path: "b.js", LOC: 20, Cyclomatic: 4, Maintainability: 60},
		},
		FirstOrderDensity: 25,
		ChangeCost:        75,
		CoreSize:          100.0 / 3,
		Maintainability:   75,
	}
}

func TestRenderModuleTable_IncludesEveryModule(t *testing.T) {
	t.Parallel()

	out := report.RenderModuleTable(sampleResult(), true)
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, "b.js")
	assert.Contains(t, out, "TOTAL")
}

func TestRenderMaintainabilityChart_ProducesHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.RenderMaintainabilityChart(sampleResult(), &buf))
	assert.Contains(t, buf.String(), "<html>")
}

func TestDiff_ReportsChangedMaintainability(t *testing.T) {
	t.Parallel()

	before := sampleResult()
	after := sampleResult()
	after.Reports[0].Maintainability = 50

	out, err := report.Diff(before, after)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDiff_IdenticalResultsProduceNoDelta(t *testing.T) {
	t.Parallel()

	result := sampleResult()

	out, err := report.Diff(result, result)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[31m")
	assert.NotContains(t, out, "\x1b[32m")
}
