// Package pipeline defines configuration option descriptors for the
// settings exposed by pkg/metrics and pkg/project, so a CLI front end can
// generate flags without duplicating each setting's name and default.
package pipeline

import (
	"fmt"
	"log"
	"strings"
)

// ConfigurationOptionType represents the possible types of a
// ConfigurationOption's value.
type ConfigurationOptionType int

const (
	// BoolConfigurationOption reflects the boolean value type.
	BoolConfigurationOption ConfigurationOptionType = iota
	// IntConfigurationOption reflects the integer value type.
	IntConfigurationOption
	// StringConfigurationOption reflects the string value type.
	StringConfigurationOption
	// FloatConfigurationOption reflects a floating point value type.
	FloatConfigurationOption
	// StringsConfigurationOption reflects the array of strings value type.
	StringsConfigurationOption
)

// String returns an empty string for the boolean type, and the type name
// otherwise. Used by the CLI to show an argument's type in --help output.
func (opt ConfigurationOptionType) String() string {
	switch opt {
	case BoolConfigurationOption:
		return ""
	case IntConfigurationOption:
		return "int"
	case StringConfigurationOption:
		return "string"
	case FloatConfigurationOption:
		return "float"
	case StringsConfigurationOption:
		return "string"
	}

	log.Panicf("invalid ConfigurationOptionType value %d", opt)

	return ""
}

// ConfigurationOption describes one flag-settable field of metrics.Settings
// or project.Options in a form a CLI or config loader can enumerate.
type ConfigurationOption struct {
	// Default is the initial value of the configuration option.
	Default any
	// Name identifies the option in Settings/Options.
	Name string
	// Description is the help text shown for the option.
	Description string
	// Flag is the CLI token with "--" prepended.
	Flag string
	// Type specifies the kind of the option's value.
	Type ConfigurationOptionType
}

// FormatDefault converts Default to its string representation, as shown
// in --help output.
func (opt ConfigurationOption) FormatDefault() string {
	if opt.Type == StringsConfigurationOption {
		strSlice, ok := opt.Default.([]string)
		if !ok {
			return fmt.Sprint(opt.Default)
		}

		return fmt.Sprintf("%q", strings.Join(strSlice, ","))
	}

	if opt.Type != StringConfigurationOption {
		return fmt.Sprint(opt.Default)
	}

	return fmt.Sprintf("%q", opt.Default)
}
