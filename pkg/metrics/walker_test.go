package metrics_test

import "github.com/plexus-metrics/plexus/pkg/metrics"

// fakeAST is a minimal AST implementation for tests: it exposes only the
// optional top-level location the core is allowed to inspect.
type fakeAST struct {
	loc    metrics.LineRange
	hasLoc bool
}

func (a fakeAST) Loc() (metrics.LineRange, bool) {
	return a.loc, a.hasLoc
}

// scriptedWalker drives handlers through a fixed sequence of calls,
// standing in for a real language walker in tests.
type scriptedWalker struct {
	steps []func(metrics.Handlers)
	err   error
}

func (w *scriptedWalker) Walk(_ metrics.AST, _ metrics.Settings, handlers metrics.Handlers) error {
	if w.err != nil {
		return w.err
	}

	for _, step := range w.steps {
		step(handlers)
	}

	return nil
}

func createScope(name string, hasName bool, loc *metrics.LineRange, params uint32) func(metrics.Handlers) {
	return func(h metrics.Handlers) { h.CreateScope(name, hasName, loc, params) }
}

func popScope() func(metrics.Handlers) {
	return func(h metrics.Handlers) { h.PopScope() }
}

func processNode(node any, syntax *metrics.Syntax) func(metrics.Handlers) {
	return func(h metrics.Handlers) { h.ProcessNode(node, syntax) }
}

func identifier(s string) metrics.IdentifierFn {
	return func(any) string { return s }
}
