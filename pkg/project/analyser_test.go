package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexus-metrics/plexus/pkg/metrics"
)

type fakeAST struct {
	loc    metrics.LineRange
	hasLoc bool
}

func (a fakeAST) Loc() (metrics.LineRange, bool) { return a.loc, a.hasLoc }

// chainWalker emits one CommonJS dependency pointing at `next`, if set,
// for every module it walks.
type chainWalker struct {
	next map[string]string
	path string
}

func (w *chainWalker) Walk(ast metrics.AST, _ metrics.Settings, h metrics.Handlers) error {
	_ = ast

	next, ok := w.next[w.path]
	if !ok {
		return nil
	}

	h.ProcessNode(nil, &metrics.Syntax{
		Dependencies: func(any, bool) []metrics.Dependency {
			return []metrics.Dependency{{Type: "CommonJS", Path: "./" + next}}
		},
	})

	return nil
}

// perModuleWalker dispatches to a per-path metrics.Walker, letting tests
// script different behaviour for each module in a project.
type perModuleWalker struct {
	byPath map[string]metrics.Walker
}

func (w *perModuleWalker) Walk(ast metrics.AST, settings metrics.Settings, h metrics.Handlers) error {
	// The Module Analyser does not pass path to the walker directly; tests
	// route via a wrapper AST carrying its own path instead.
	pa, ok := ast.(pathAST)
	if !ok {
		return nil
	}

	return w.byPath[pa.path].Walk(ast, settings, h)
}

type pathAST struct {
	fakeAST
	path string
}

func TestAnalyse_EmptyPathRejected(t *testing.T) {
	t.Parallel()

	_, err := NewAnalyser().Analyse(
		[]ModuleInput{{Path: "", AST: fakeAST{}}},
		&perModuleWalker{byPath: map[string]metrics.Walker{}},
		Options{},
	)
	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestAnalyse_PropagatesModuleError(t *testing.T) {
	t.Parallel()

	failing := errors.New("bad syntax tree")
	walker := &perModuleWalker{byPath: map[string]metrics.Walker{
		"a.js": failWalker{err: failing},
	}}

	_, err := NewAnalyser().Analyse(
		[]ModuleInput{{Path: "a.js", AST: pathAST{path: "a.js"}}},
		walker,
		Options{},
	)
	require.ErrorIs(t, err, ErrPropagatedModule)
	assert.Contains(t, err.Error(), "a.js")
}

type failWalker struct{ err error }

func (w failWalker) Walk(metrics.AST, metrics.Settings, metrics.Handlers) error { return w.err }

func TestAnalyse_SkipCalculationReturnsRawReports(t *testing.T) {
	t.Parallel()

	walker := &perModuleWalker{byPath: map[string]metrics.Walker{
		"a.js": noopWalker{},
		"b.js": noopWalker{},
	}}

	result, err := NewAnalyser().Analyse(
		[]ModuleInput{
			{Path: "a.js", AST: pathAST{path: "a.js"}},
			{Path: "b.js", AST: pathAST{path: "b.js"}},
		},
		walker,
		Options{SkipCalculation: true},
	)
	require.NoError(t, err)

	assert.Nil(t, result.AdjacencyMatrix)
	assert.Len(t, result.Reports, 2)
}

type noopWalker struct{}

func (noopWalker) Walk(metrics.AST, metrics.Settings, metrics.Handlers) error { return nil }

func TestAnalyse_FullProjectChain(t *testing.T) {
	t.Parallel()

	walker := &perModuleWalker{byPath: map[string]metrics.Walker{
		"a.js": &chainWalker{path: "a.js", next: map[string]string{"a.js": "b"}},
		"b.js": &chainWalker{path: "b.js", next: map[string]string{"b.js": "c"}},
		"c.js": noopWalker{},
	}}

	result, err := NewAnalyser().Analyse(
		[]ModuleInput{
			{Path: "c.js", AST: pathAST{path: "c.js"}},
			{Path: "a.js", AST: pathAST{path: "a.js"}},
			{Path: "b.js", AST: pathAST{path: "b.js"}},
		},
		walker,
		Options{},
	)
	require.NoError(t, err)

	require.Len(t, result.Reports, 3)
	assert.Equal(t, "a.js", result.Reports[0].Path)
	assert.Equal(t, "b.js", result.Reports[1].Path)
	assert.Equal(t, "c.js", result.Reports[2].Path)

	assert.Equal(t, [][]int{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	}, result.VisibilityMatrix.Rows())
	assert.InDelta(t, 100.0/3, result.CoreSize, 1e-9)
}
