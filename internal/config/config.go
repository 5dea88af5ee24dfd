// Package config loads plexus's CLI configuration from file and
// environment variables via viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/plexus-metrics/plexus/pkg/metrics"
	"github.com/plexus-metrics/plexus/pkg/project"
)

// ErrInvalidSettings is returned when a loaded Config fails validation.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Config holds all plexus CLI configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AnalysisConfig mirrors the flag-settable fields of metrics.Settings and
// project.Options.
type AnalysisConfig struct {
	ForIn           bool `mapstructure:"forin"`
	LogicalOr       bool `mapstructure:"logicalor"`
	NewMI           bool `mapstructure:"newmi"`
	SwitchCase      bool `mapstructure:"switchcase"`
	TryCatch        bool `mapstructure:"trycatch"`
	SkipCalculation bool `mapstructure:"skipcalculation"`
	NoCoreSize      bool `mapstructure:"nocoresize"`
}

// CacheConfig configures the on-disk result cache (pkg/cache).
type CacheConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Directory string `mapstructure:"directory"`
}

// LoggingConfig configures pkg/observability's logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// MetricsConfig configures pkg/observability's Prometheus instruments.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from configPath (or the default search path
// when empty), environment variables prefixed PLEXUS_, and built-in
// defaults matching metrics.DefaultSettings.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("plexus")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/plexus")
	}

	v.SetEnvPrefix("PLEXUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// validateConfig checks the loaded configuration for values the rest of
// the CLI cannot safely act on.
func validateConfig(cfg *Config) error {
	if !validLogLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn, or error)", ErrInvalidSettings, cfg.Logging.Level)
	}

	if cfg.Cache.Enabled && cfg.Cache.Directory == "" {
		return fmt.Errorf("%w: cache.directory must be set when cache.enabled is true", ErrInvalidSettings)
	}

	return nil
}

// MetricsSettings converts the loaded analysis config into a
// metrics.Settings.
func (c AnalysisConfig) MetricsSettings() metrics.Settings {
	return metrics.Settings{
		ForIn:      c.ForIn,
		LogicalOr:  c.LogicalOr,
		NewMI:      c.NewMI,
		SwitchCase: c.SwitchCase,
		TryCatch:   c.TryCatch,
	}
}

// ProjectOptions converts the loaded analysis config into a
// project.Options.
func (c AnalysisConfig) ProjectOptions() project.Options {
	return project.Options{
		SkipCalculation: c.SkipCalculation,
		NoCoreSize:      c.NoCoreSize,
		Settings:        c.MetricsSettings(),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.forin", false)
	v.SetDefault("analysis.logicalor", true)
	v.SetDefault("analysis.newmi", false)
	v.SetDefault("analysis.switchcase", true)
	v.SetDefault("analysis.trycatch", false)
	v.SetDefault("analysis.skipcalculation", false)
	v.SetDefault("analysis.nocoresize", false)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.directory", ".plexus-cache")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json", false)

	v.SetDefault("metrics.enabled", false)
}
