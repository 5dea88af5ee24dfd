package pipeline

// MetricsSettingsOptions describes every flag-settable field of
// metrics.Settings, in declaration order, so a CLI can
// generate --forin/--logicalor/... flags without hardcoding the list
// twice.
func MetricsSettingsOptions() []ConfigurationOption {
	return []ConfigurationOption{
		{
			Name:        "forin",
			Flag:        "--forin",
			Description: "Count a for..in loop as contributing to cyclomatic complexity",
			Type:        BoolConfigurationOption,
			Default:     false,
		},
		{
			Name:        "logicalor",
			Flag:        "--logicalor",
			Description: "Count a logical OR as contributing to cyclomatic complexity",
			Type:        BoolConfigurationOption,
			Default:     true,
		},
		{
			Name:        "newmi",
			Flag:        "--newmi",
			Description: "Rescale the maintainability index into the 0-100 range",
			Type:        BoolConfigurationOption,
			Default:     false,
		},
		{
			Name:        "switchcase",
			Flag:        "--switchcase",
			Description: "Count a switch statement's cases as contributing to cyclomatic complexity",
			Type:        BoolConfigurationOption,
			Default:     true,
		},
		{
			Name:        "trycatch",
			Flag:        "--trycatch",
			Description: "Count a catch clause as contributing to cyclomatic complexity",
			Type:        BoolConfigurationOption,
			Default:     false,
		},
	}
}

// ProjectOptionsOptions describes the flag-settable fields of
// project.Options.
func ProjectOptionsOptions() []ConfigurationOption {
	return []ConfigurationOption{
		{
			Name:        "skipcalculation",
			Flag:        "--skipcalculation",
			Description: "Skip project-level aggregation and return raw module reports only",
			Type:        BoolConfigurationOption,
			Default:     false,
		},
		{
			Name:        "nocoresize",
			Flag:        "--nocoresize",
			Description: "Skip the Floyd-Warshall visibility pass and core size calculation",
			Type:        BoolConfigurationOption,
			Default:     false,
		},
	}
}
