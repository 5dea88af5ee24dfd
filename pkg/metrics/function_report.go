package metrics

// LineRange is the inclusive [Start, End] line span of a syntax tree node,
// as reported by the walker's AST contract.
type LineRange struct {
	StartLine uint32
	EndLine   uint32
}

// SLOC holds physical and logical source-line-of-code counts. Physical is
// unset (HasPhysical == false) when the owning report has no recognised
// location.
type SLOC struct {
	Physical    uint32
	HasPhysical bool
	Logical     uint32
}

// FunctionReport is the record for one lexical scope: a function, method,
// or (for the module aggregate) the whole module. It is created by
// createScope, mutated only while at the top of the scope stack, and never
// mutated again after popScope.
type FunctionReport struct {
	Name     string
	HasName  bool
	Line     uint32
	HasLine  bool
	Params   uint32
	Cyclomatic uint32

	// NestingDepth is how many enclosing function scopes were already open
	// when this one was created: 0 for a top-level function, 1 for a
	// closure defined directly inside one, and so on.
	NestingDepth int

	SLOC      SLOC
	Halstead  *HalsteadPair

	CyclomaticDensity float64
}

// NewFunctionReport builds a FunctionReport for the given (optional) name,
// (optional) source range, and parameter count. Cyclomatic starts at 1
// (the base path) and logical SLOC starts at 0,
func NewFunctionReport(name string, hasName bool, loc *LineRange, params uint32) *FunctionReport {
	report := &FunctionReport{
		Name:       name,
		HasName:    hasName,
		Params:     params,
		Cyclomatic: 1,
		Halstead:   NewHalsteadPair(),
	}

	if loc != nil {
		report.Line = loc.StartLine
		report.HasLine = true
		report.SLOC.Physical = loc.EndLine - loc.StartLine + 1
		report.SLOC.HasPhysical = true
	}

	return report
}
