package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "plexus"
	meterName  = "plexus"
)

// Providers holds the initialized observability providers for one run.
type Providers struct {
	// Tracer is the named tracer for creating spans around module and
	// project analysis.
	Tracer trace.Tracer

	// Meter is the named meter for creating the AnalysisMetrics
	// instruments.
	Meter metric.Meter

	// Logger is the structured, trace-aware logger.
	Logger *slog.Logger

	// Registry is the Prometheus registry the meter provider's exporter is
	// attached to, or nil when metrics are disabled. Each Init call gets
	// its own registry so repeated calls in the same process (one per CLI
	// invocation in tests, for example) never collide registering the
	// same collector twice against prometheus's global default registry.
	Registry *promclient.Registry

	// Shutdown flushes any pending telemetry and releases resources.
	// Must be called before process exit.
	Shutdown func(ctx context.Context) error
}

// Init wires structured logging and, when cfg.MetricsEnabled, a
// Prometheus-backed meter provider. Tracing always uses an in-process
// SDK tracer provider with no exporter attached; that provider is
// installed as the otel global tracer provider, and Providers carries only
// the named Tracer obtained from it.
func Init(cfg Config, out io.Writer) (Providers, error) {
	if out == nil {
		out = os.Stderr
	}

	logger := newLogger(cfg, out)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(buildResource(cfg)),
	)
	otel.SetTracerProvider(tp)

	if !cfg.MetricsEnabled {
		return Providers{
			Tracer:   tp.Tracer(tracerName),
			Meter:    noopmetric.NewMeterProvider().Meter(meterName),
			Logger:   logger,
			Shutdown: tp.Shutdown,
		}, nil
	}

	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return Providers{}, fmt.Errorf("build prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(buildResource(cfg)),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(mp)

	return Providers{
		Tracer:   tp.Tracer(tracerName),
		Meter:    mp.Meter(meterName),
		Logger:   logger,
		Registry: registry,
		Shutdown: func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown tracer provider: %w", err)
			}

			if err := mp.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown meter provider: %w", err)
			}

			return nil
		},
	}, nil
}

func buildResource(cfg Config) *resource.Resource {
	service := cfg.ServiceName
	if service == "" {
		service = defaultServiceName
	}

	return resource.NewSchemaless(attribute.String("service.name", service))
}

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var inner slog.Handler
	if cfg.LogJSON {
		inner = slog.NewJSONHandler(out, opts)
	} else {
		inner = slog.NewTextHandler(out, opts)
	}

	service := cfg.ServiceName
	if service == "" {
		service = defaultServiceName
	}

	return slog.New(NewTracingHandler(inner, service))
}
