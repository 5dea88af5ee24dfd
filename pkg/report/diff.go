package report

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/plexus-metrics/plexus/pkg/project"
)

// summary is the YAML-serializable projection of a project.Result that
// diffs meaningfully: matrices and per-function detail are omitted since
// line-level diffing them produces noise rather than signal.
type summary struct {
	Modules []moduleSummary `yaml:"modules"`

	FirstOrderDensity float64 `yaml:"firstOrderDensity"`
	ChangeCost        float64 `yaml:"changeCost"`
	CoreSize          float64 `yaml:"coreSize"`
	Maintainability   float64 `yaml:"maintainability"`
}

type moduleSummary struct {
	Path            string  `yaml:"path"`
	LOC             float64 `yaml:"loc"`
	Cyclomatic      float64 `yaml:"cyclomatic"`
	Maintainability float64 `yaml:"maintainability"`
}

func toSummary(result *project.Result) summary {
	s := summary{
		Modules:           make([]moduleSummary, len(result.Reports)),
		FirstOrderDensity: result.FirstOrderDensity,
		ChangeCost:        result.ChangeCost,
		CoreSize:          result.CoreSize,
		Maintainability:   result.Maintainability,
	}

	for i, r := range result.Reports {
		s.Modules[i] = moduleSummary{
			Path:            r.Path,
			LOC:             r.LOC,
			Cyclomatic:      r.Cyclomatic,
			Maintainability: r.Maintainability,
		}
	}

	return s
}

// Diff renders a line-level diff between the YAML summaries of two project
// results, formatted the way diffmatchpatch.DiffPrettyText does: unchanged
// text plain, deletions in red and insertions in green ANSI escape codes.
func Diff(before, after *project.Result) (string, error) {
	beforeYAML, err := yaml.Marshal(toSummary(before))
	if err != nil {
		return "", fmt.Errorf("report: marshal before: %w", err)
	}

	afterYAML, err := yaml.Marshal(toSummary(after))
	if err != nil {
		return "", fmt.Errorf("report: marshal after: %w", err)
	}

	dmp := diffmatchpatch.New()

	srcRunes, dstRunes, lineArray := dmp.DiffLinesToRunes(string(beforeYAML), string(afterYAML))
	diffs := dmp.DiffMainRunes(srcRunes, dstRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs), nil
}
