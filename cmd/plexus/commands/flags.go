package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/plexus-metrics/plexus/internal/config"
	"github.com/plexus-metrics/plexus/pkg/pipeline"
)

// registerAnalysisFlags generates one cobra flag per descriptor in
// pipeline.MetricsSettingsOptions and pipeline.ProjectOptionsOptions, so
// the flag set, its defaults, and its help text all come from the same
// descriptors that document metrics.Settings and project.Options rather
// than being hand-duplicated here.
func registerAnalysisFlags(cmd *cobra.Command) {
	for _, opt := range analysisOptions() {
		name := strings.TrimPrefix(opt.Flag, "--")
		cmd.Flags().Bool(name, opt.Default.(bool), opt.Description)
	}
}

func analysisOptions() []pipeline.ConfigurationOption {
	options := make([]pipeline.ConfigurationOption, 0, len(pipeline.MetricsSettingsOptions())+len(pipeline.ProjectOptionsOptions()))
	options = append(options, pipeline.MetricsSettingsOptions()...)
	options = append(options, pipeline.ProjectOptionsOptions()...)

	return options
}

// applyAnalysisFlagOverrides overrides cfg.Analysis fields with any
// --forin/--logicalor/... flag the caller explicitly set, leaving fields
// for unset flags at whatever Load already resolved from file/env/default.
func applyAnalysisFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	setters := map[string]func(bool){
		"forin":           func(v bool) { cfg.Analysis.ForIn = v },
		"logicalor":       func(v bool) { cfg.Analysis.LogicalOr = v },
		"newmi":           func(v bool) { cfg.Analysis.NewMI = v },
		"switchcase":      func(v bool) { cfg.Analysis.SwitchCase = v },
		"trycatch":        func(v bool) { cfg.Analysis.TryCatch = v },
		"skipcalculation": func(v bool) { cfg.Analysis.SkipCalculation = v },
		"nocoresize":      func(v bool) { cfg.Analysis.NoCoreSize = v },
	}

	for name, set := range setters {
		if !cmd.Flags().Changed(name) {
			continue
		}

		if v, err := cmd.Flags().GetBool(name); err == nil {
			set(v)
		}
	}
}
