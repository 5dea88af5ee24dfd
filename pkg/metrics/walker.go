package metrics

// AST is the syntax tree contract a walker operates over: the
// core only ever inspects the optional top-level location, everything else
// is opaque to it and is the walker's concern.
type AST interface {
	Loc() (LineRange, bool)
}

// Settings are the five traversal-shaping booleans forwarded opaquely to
// the walker, except NewMI which the Module Analyser itself consumes
// during maintainability-index finalisation.
type Settings struct {
	ForIn     bool
	LogicalOr bool
	NewMI     bool
	SwitchCase bool
	TryCatch  bool
}

// DefaultSettings returns the default complexity-counting toggles.
func DefaultSettings() Settings {
	return Settings{
		ForIn:      false,
		LogicalOr:  true,
		NewMI:      false,
		SwitchCase: true,
		TryCatch:   false,
	}
}

// Handlers is the callback surface a Walker drives during traversal. The
// Module Analyser supplies one Handlers value per Analyse call; it owns
// no state visible outside the call.
type Handlers struct {
	// CreateScope opens a new function/method scope. name is absent for
	// anonymous functions; loc is absent when the walker has no source
	// range for the scope.
	CreateScope func(name string, hasName bool, loc *LineRange, params uint32)
	// PopScope closes the most recently opened scope.
	PopScope func()
	// ProcessNode is invoked once per AST node the walker visits, with the
	// walker's own syntax descriptor for that node's kind.
	ProcessNode func(node any, syntax *Syntax)
}

// IdentifierFn extracts a Halstead identifier from a node; it is invoked
// with the node so the walker can compute token text lazily.
type IdentifierFn func(node any) string

// FilterFn gates whether a HalsteadToken applies to a given node.
type FilterFn func(node any) bool

// HalsteadToken describes one operator or operand occurrence a syntax
// descriptor wants recorded. Identifier is always set; if Filter is
// non-nil it must return true for the token to be counted.
type HalsteadToken struct {
	Identifier IdentifierFn
	Filter     FilterFn
}

// CountFn computes a numeric increment (logical SLOC or cyclomatic count)
// from a node; used when a Syntax field is node-dependent rather than a
// flat constant.
type CountFn func(node any) uint32

// DependencyFn extracts zero or more Dependency records from a node. Its
// clearFlag parameter is computed by the analyser, not the walker — see
// Syntax.Dependencies and the Module Analyser's dependency latch.
type DependencyFn func(node any, clearFlag bool) []Dependency

// Syntax is the walker's own per-node-kind descriptor, consumed by
// ProcessNode. All fields are optional; a zero Syntax
// contributes nothing.
type Syntax struct {
	// LLOC increments logical SLOC on the current function (if any) and
	// the module aggregate.
	LLOC CountFn
	// Cyclomatic increments cyclomatic complexity the same way.
	Cyclomatic CountFn
	// Operators and Operands are Halstead tokens attributed to the
	// current function (if any) and the module aggregate.
	Operators []HalsteadToken
	Operands  []HalsteadToken
	// Dependencies extracts dependency records from this node, if any.
	Dependencies DependencyFn
}

// Const returns a CountFn that always returns n, for descriptors whose
// LLOC/Cyclomatic field is a flat constant rather than node-dependent.
func Const(n uint32) CountFn {
	return func(any) uint32 { return n }
}

// Walker drives traversal of ast, invoking handlers in traversal order and
// forwarding settings opaquely. Supplying the walker — and the syntax
// descriptors it uses internally — is outside the core's responsibility;
// the core only consumes the calls it receives.
type Walker interface {
	Walk(ast AST, settings Settings, handlers Handlers) error
}
