package metrics

import (
	"fmt"
	"math"
)

// Halstead derivation divisors.
const (
	bugsDivisor = 3000.0
	timeDivisor = 18.0

	maintainabilityBase       = 171.0
	maintainabilityEffortCoef = 3.42
	maintainabilityCycloCoef  = 0.23
	maintainabilitySLOCCoef   = 16.2
	newMIRescale              = 100.0
)

// calculateMetrics finalises a freshly-walked ModuleReport: per-function
// (and aggregate) cyclomatic density and Halstead derivations, followed by
// the module's project-style averages and maintainability index.
func calculateMetrics(report *ModuleReport, settings Settings) error {
	finalizeFunctionReport(report.Aggregate)

	for _, fn := range report.Functions {
		finalizeFunctionReport(fn)
	}

	sumLOC, sumCyclomatic, sumEffort, sumParams := moduleSums(report)

	report.LOC = sumLOC
	report.Cyclomatic = sumCyclomatic
	report.Effort = sumEffort
	report.Params = sumParams

	mi, err := maintainabilityIndex(sumEffort, sumCyclomatic, sumLOC, settings.NewMI)
	if err != nil {
		return err
	}

	report.Maintainability = mi

	return nil
}

// finalizeFunctionReport computes CyclomaticDensity and the Halstead scalar
// measures for a single report.
func finalizeFunctionReport(fn *FunctionReport) {
	fn.CyclomaticDensity = (float64(fn.Cyclomatic) / float64(fn.SLOC.Logical)) * 100

	finalizeHalstead(fn.Halstead)
}

// finalizeHalstead fills in the derived scalars of a HalsteadPair.
func finalizeHalstead(h *HalsteadPair) {
	h.Length = h.Operators.Total + h.Operands.Total

	if h.Length == 0 {
		h.Vocabulary, h.Difficulty, h.Volume, h.Effort, h.Bugs, h.Time = 0, 0, 0, 0, 0, 0

		return
	}

	h.Vocabulary = h.Operators.Distinct + h.Operands.Distinct

	operandFactor := 1.0
	if h.Operands.Distinct != 0 {
		operandFactor = float64(h.Operands.Total) / float64(h.Operands.Distinct)
	}

	h.Difficulty = (float64(h.Operators.Distinct) / 2) * operandFactor
	h.Volume = float64(h.Length) * math.Log2(float64(h.Vocabulary))
	h.Effort = h.Difficulty * h.Volume
	h.Bugs = h.Volume / bugsDivisor
	h.Time = h.Effort / timeDivisor
}

// moduleSums sums sloc.logical/cyclomatic/effort/params across functions;
// when there are no functions, it seeds from the aggregate and treats
// count as 1.
func moduleSums(report *ModuleReport) (loc, cyclomatic, effort, params float64) {
	count := len(report.Functions)

	if count == 0 {
		agg := report.Aggregate

		return float64(agg.SLOC.Logical), float64(agg.Cyclomatic), agg.Halstead.Effort, float64(agg.Params)
	}

	var sumLOC, sumCyclomatic, sumEffort, sumParams float64

	for _, fn := range report.Functions {
		sumLOC += float64(fn.SLOC.Logical)
		sumCyclomatic += float64(fn.Cyclomatic)
		sumEffort += fn.Halstead.Effort
		sumParams += float64(fn.Params)
	}

	n := float64(count)

	return sumLOC / n, sumCyclomatic / n, sumEffort / n, sumParams / n
}

// maintainabilityIndex computes the maintainability index from average
// effort (epsilon), average cyclomatic (mu), and average logical SLOC
// (lambda), clamped to at most 171 and optionally rescaled to [0, 100]
// when newMI is set.
func maintainabilityIndex(effort, cyclomatic, loc float64, newMI bool) (float64, error) {
	if cyclomatic == 0 {
		return 0, fmt.Errorf("%w", ErrZeroCyclomatic)
	}

	mi := maintainabilityBase -
		maintainabilityEffortCoef*math.Log(effort) -
		maintainabilityCycloCoef*math.Log(cyclomatic) -
		maintainabilitySLOCCoef*math.Log(loc)

	if mi > maintainabilityBase {
		mi = maintainabilityBase
	}

	if newMI {
		mi = math.Max(0, mi*newMIRescale/maintainabilityBase)
	}

	return mi, nil
}
