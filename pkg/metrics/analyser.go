package metrics

import "fmt"

// ModuleAnalyser orchestrates a single walk of one module's syntax tree,
// turning walker callbacks into a ModuleReport. A
// ModuleAnalyser is stateless between calls to Analyse: the scope stack,
// the current-function pointer, and the dependency latch exist only for
// the duration of one call.
type ModuleAnalyser struct{}

// NewModuleAnalyser returns a ready-to-use ModuleAnalyser.
func NewModuleAnalyser() *ModuleAnalyser {
	return &ModuleAnalyser{}
}

// moduleAnalysis is the mutable state of a single Analyse call: the scope
// stack and the report under construction. It never escapes Analyse.
type moduleAnalysis struct {
	report *ModuleReport
	scopes *scopeStack[*FunctionReport]

	dependencySeen bool
}

// Analyse runs one walk over ast using walker, producing a ModuleReport for
// path. Settings are forwarded to the walker opaquely except NewMI, which
// this package consumes during finalisation.
func (a *ModuleAnalyser) Analyse(path string, ast AST, walker Walker, settings Settings) (*ModuleReport, error) {
	if ast == nil || walker == nil {
		return nil, fmt.Errorf("%w: ast and walker must be non-nil", ErrInvalidInput)
	}

	var moduleLoc *LineRange

	if loc, ok := ast.Loc(); ok {
		locCopy := loc
		moduleLoc = &locCopy
	}

	state := &moduleAnalysis{
		report: &ModuleReport{
			Path:      path,
			Aggregate: NewFunctionReport("", false, moduleLoc, 0),
		},
		scopes: newScopeStack[*FunctionReport](),
	}

	handlers := Handlers{
		CreateScope: state.createScope,
		PopScope:    state.popScope,
		ProcessNode: state.processNode,
	}

	if err := walker.Walk(ast, settings, handlers); err != nil {
		return nil, fmt.Errorf("metrics: walk failed: %w", err)
	}

	if err := calculateMetrics(state.report, settings); err != nil {
		return nil, err
	}

	return state.report, nil
}

// createScope implements Handlers.CreateScope: it builds a new
// FunctionReport, pushes it onto the scope stack, and records it on the
// module report.
func (s *moduleAnalysis) createScope(name string, hasName bool, loc *LineRange, params uint32) {
	fn := NewFunctionReport(name, hasName, loc, params)
	fn.NestingDepth = s.scopes.depth()

	s.scopes.push(fn)
	s.report.Functions = append(s.report.Functions, fn)
	s.report.Aggregate.Params += params
}

// popScope implements Handlers.PopScope.
func (s *moduleAnalysis) popScope() {
	s.scopes.pop()
}

func (s *moduleAnalysis) current() (*FunctionReport, bool) {
	return s.scopes.top()
}

// processNode implements Handlers.ProcessNode, applying the five
// increments a Syntax descriptor can carry: LLOC, Cyclomatic, Operators,
// Operands, and Dependencies.
func (s *moduleAnalysis) processNode(node any, syntax *Syntax) {
	if syntax == nil {
		return
	}

	current, hasCurrent := s.current()

	if syntax.LLOC != nil {
		n := syntax.LLOC(node)
		if hasCurrent {
			current.SLOC.Logical += n
		}

		s.report.Aggregate.SLOC.Logical += n
	}

	if syntax.Cyclomatic != nil {
		n := syntax.Cyclomatic(node)
		if hasCurrent {
			current.Cyclomatic += n
		}

		s.report.Aggregate.Cyclomatic += n
	}

	s.applyTokens(node, syntax.Operators, Operators, current, hasCurrent)
	s.applyTokens(node, syntax.Operands, Operands, current, hasCurrent)

	if syntax.Dependencies != nil {
		clearFlag := !s.dependencySeen
		s.dependencySeen = true

		deps := syntax.Dependencies(node, clearFlag)
		s.report.Dependencies = append(s.report.Dependencies, deps...)
	}
}

func (s *moduleAnalysis) applyTokens(
	node any, tokens []HalsteadToken, metric HalsteadMetric, current *FunctionReport, hasCurrent bool,
) {
	for _, token := range tokens {
		if token.Filter != nil && !token.Filter(node) {
			continue
		}

		identifier := token.Identifier(node)

		if hasCurrent {
			current.Halstead.Encounter(metric, identifier)
		}

		s.report.Aggregate.Halstead.Encounter(metric, identifier)
	}
}
