package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexus-metrics/plexus/pkg/metrics"
)

func TestProcessResults_TwoModuleChain(t *testing.T) {
	t.Parallel()

	reports := []*metrics.ModuleReport{
		{Path: "a.js", Dependencies: []metrics.Dependency{{Type: "CommonJS", Path: "./b"}}},
		{Path: "b.js"},
	}

	result := processResults(reports, false)

	require.Equal(t, [][]int{{0, 1}, {0, 0}}, result.AdjacencyMatrix.Rows())
	assert.InDelta(t, 25, result.FirstOrderDensity, 1e-9)
	assert.Equal(t, [][]int{{0, 1}, {0, 0}}, result.VisibilityMatrix.Rows())
	assert.InDelta(t, 75, result.ChangeCost, 1e-9)
}

func TestProcessResults_ThreeModuleChainCoreSize(t *testing.T) {
	t.Parallel()

	reports := []*metrics.ModuleReport{
		{Path: "a.js", Dependencies: []metrics.Dependency{{Type: "CommonJS", Path: "./b"}}},
		{Path: "b.js", Dependencies: []metrics.Dependency{{Type: "CommonJS", Path: "./c"}}},
		{Path: "c.js"},
	}

	result := processResults(reports, false)

	require.Equal(t, [][]int{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	}, result.VisibilityMatrix.Rows())

	assert.InDelta(t, 100.0/3, result.CoreSize, 1e-9)
}

func TestProcessResults_NonRelativeCommonJSNoEdge(t *testing.T) {
	t.Parallel()

	reports := []*metrics.ModuleReport{
		{Path: "a.js", Dependencies: []metrics.Dependency{{Type: "CommonJS", Path: "lodash"}}},
		{Path: "lodash.js"},
	}

	result := processResults(reports, false)

	for _, row := range result.AdjacencyMatrix.Rows() {
		for _, v := range row {
			assert.Zero(t, v)
		}
	}
}

func TestProcessResults_NoCoreSizeSkipsVisibility(t *testing.T) {
	t.Parallel()

	reports := []*metrics.ModuleReport{
		{Path: "a.js", Dependencies: []metrics.Dependency{{Type: "CommonJS", Path: "./b"}}},
		{Path: "b.js"},
	}

	result := processResults(reports, true)

	assert.Nil(t, result.VisibilityMatrix)
	assert.Zero(t, result.ChangeCost)
	assert.Zero(t, result.CoreSize)
	assert.InDelta(t, 25, result.FirstOrderDensity, 1e-9)
}

func TestProcessResults_AdjacencyDiagonalIsZero(t *testing.T) {
	t.Parallel()

	reports := []*metrics.ModuleReport{
		{Path: "a.js", Dependencies: []metrics.Dependency{{Type: "CommonJS", Path: "./a"}}},
	}

	result := processResults(reports, false)
	assert.Equal(t, 0, result.AdjacencyMatrix.Get(0, 0))
}

func TestProcessResults_EmptyProjectYieldsZeroAverages(t *testing.T) {
	t.Parallel()

	result := processResults(nil, false)

	assert.Zero(t, result.LOC)
	assert.Zero(t, result.Cyclomatic)
	assert.Zero(t, result.Maintainability)
}

func TestMedianInt(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2, medianInt([]int{1, 2, 3}), 1e-9)
	assert.InDelta(t, 2.5, medianInt([]int{1, 2, 3, 4}), 1e-9)
	assert.Zero(t, medianInt(nil))
}
