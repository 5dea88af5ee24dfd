package observability

import "log/slog"

const defaultServiceName = "plexus"

// Config holds observability configuration for a single plexus run.
type Config struct {
	// ServiceName is the OTel resource service name.
	ServiceName string

	// LogLevel controls the minimum slog severity.
	LogLevel slog.Level

	// LogJSON enables JSON-formatted log output; otherwise logs are
	// rendered as human-readable text, which is the default for
	// interactive CLI use.
	LogJSON bool

	// MetricsEnabled starts a Prometheus registry and exposes the
	// analysis instruments defined in analysis_metrics.go.
	MetricsEnabled bool
}

// DefaultConfig returns a Config suitable for zero-config CLI startup.
func DefaultConfig() Config {
	return Config{
		ServiceName: defaultServiceName,
		LogLevel:    slog.LevelInfo,
	}
}
