package metrics

// Dependency is a module-to-module reference, emitted opaquely by a
// walker's `dependencies` descriptor field. The Project
// Analyser is the only consumer that interprets Type specially
// ("CommonJS").
type Dependency struct {
	Type    string
	Path    string
	Line    uint32
	HasLine bool
}

// ModuleReport is the output of one Module Analyser run: the module-level
// aggregate FunctionReport, the list of per-function reports collected
// during the walk, and the dependency records the walker emitted. It is
// immutable once Analyse returns.
type ModuleReport struct {
	Path string

	Aggregate    *FunctionReport
	Functions    []*FunctionReport
	Dependencies []Dependency

	Maintainability float64
	LOC             float64
	Cyclomatic      float64
	Effort          float64
	Params          float64
}
