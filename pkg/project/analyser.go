// Package project implements cross-module dependency graph analysis: it
// runs the Module Analyser across a set of modules, builds the adjacency
// and visibility matrices, and derives first-order density, change cost,
// and core size.
package project

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/plexus-metrics/plexus/pkg/metrics"
)

// ModuleInput is one entry of the sequence passed to Analyse: a module's
// syntax tree paired with its non-empty path.
type ModuleInput struct {
	Path string
	AST  metrics.AST
}

// Options configures a project-level run.
type Options struct {
	SkipCalculation bool
	NoCoreSize      bool
	Settings        metrics.Settings
}

// Result is the project-level report.
type Result struct {
	Reports []*metrics.ModuleReport

	AdjacencyMatrix  *Matrix
	VisibilityMatrix *Matrix

	FirstOrderDensity float64
	ChangeCost        float64
	CoreSize          float64

	LOC             float64
	Cyclomatic      float64
	Effort          float64
	Params          float64
	Maintainability float64
}

// Analyser runs the Module Analyser across a project's modules and
// assembles the project-level Result.
type Analyser struct {
	moduleAnalyser *metrics.ModuleAnalyser
}

// NewAnalyser returns a ready-to-use Analyser.
func NewAnalyser() *Analyser {
	return &Analyser{moduleAnalyser: metrics.NewModuleAnalyser()}
}

// Analyse runs the Module Analyser over every module in modules using
// walker, then — unless options.SkipCalculation is set — processes the
// resulting reports into a full Result. Each module analysis is a pure
// function of its own inputs, so modules are analysed concurrently; the
// Floyd-Warshall stage runs only after every module has finished.
func (a *Analyser) Analyse(modules []ModuleInput, walker metrics.Walker, options Options) (*Result, error) {
	for _, m := range modules {
		if m.Path == "" {
			return nil, fmt.Errorf("%w", ErrEmptyPath)
		}
	}

	reports, err := a.analyseModules(modules, walker, options.Settings)
	if err != nil {
		return nil, err
	}

	if options.SkipCalculation {
		return &Result{Reports: reports}, nil
	}

	return processResults(reports, options.NoCoreSize), nil
}

// analyseModules runs the Module Analyser over each module, bounded by
// GOMAXPROCS concurrent walks, preserving input order in the result.
func (a *Analyser) analyseModules(
	modules []ModuleInput, walker metrics.Walker, settings metrics.Settings,
) ([]*metrics.ModuleReport, error) {
	reports := make([]*metrics.ModuleReport, len(modules))
	errs := make([]error, len(modules))

	sem := make(chan struct{}, maxParallel())

	var wg sync.WaitGroup

	for i, m := range modules {
		wg.Add(1)

		go func(i int, m ModuleInput) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			report, err := a.moduleAnalyser.Analyse(m.Path, m.AST, walker, settings)
			if err != nil {
				errs[i] = fmt.Errorf("%w: %s: %w", ErrPropagatedModule, m.Path, err)

				return
			}

			reports[i] = report
		}(i, m)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return reports, nil
}

func maxParallel() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}

	return 1
}

// processResults implements three stages: sort and build
// the adjacency matrix; optionally build the visibility matrix and core
// size; compute project averages.
func processResults(reports []*metrics.ModuleReport, noCoreSize bool) *Result {
	sortReports(reports, func(r *metrics.ModuleReport) string { return r.Path })

	paths := make([]string, len(reports))
	dependencies := make([][]metrics.Dependency, len(reports))

	for i, r := range reports {
		paths[i] = r.Path
		dependencies[i] = r.Dependencies
	}

	adjacency := buildAdjacency(paths, dependencies)
	density := firstOrderDensity(adjacency)

	result := &Result{
		Reports:           reports,
		AdjacencyMatrix:   adjacency,
		FirstOrderDensity: density,
	}

	if !noCoreSize {
		visibility, changeCost := buildVisibility(adjacency)
		result.VisibilityMatrix = visibility
		result.ChangeCost = changeCost
		result.CoreSize = coreSize(visibility, density)
	}

	result.LOC, result.Cyclomatic, result.Effort, result.Params, result.Maintainability = projectAverages(reports)

	return result
}

// projectAverages averages cyclomatic, effort, loc, maintainability, and
// params across all module reports; with no reports the
// divisor is 1, yielding zeros.
func projectAverages(reports []*metrics.ModuleReport) (loc, cyclomatic, effort, params, maintainability float64) {
	divisor := float64(len(reports))
	if divisor == 0 {
		divisor = 1
	}

	for _, r := range reports {
		loc += r.LOC
		cyclomatic += r.Cyclomatic
		effort += r.Effort
		params += r.Params
		maintainability += r.Maintainability
	}

	return loc / divisor, cyclomatic / divisor, effort / divisor, params / divisor, maintainability / divisor
}
