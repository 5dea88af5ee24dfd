package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricModulesTotal     = "plexus.analysis.modules.total"
	metricModuleDuration   = "plexus.analysis.module.duration.seconds"
	metricCyclomatic       = "plexus.analysis.module.cyclomatic"
	metricMaintainability  = "plexus.analysis.module.maintainability"
	metricCacheHitsTotal   = "plexus.cache.hits.total"
	metricCacheMissesTotal = "plexus.cache.misses.total"

	attrOutcome = "outcome"
)

var durationBucketBoundaries = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30,
}

// AnalysisMetrics holds the OTel instruments recorded during a project run.
type AnalysisMetrics struct {
	modulesTotal    metric.Int64Counter
	moduleDuration  metric.Float64Histogram
	cyclomatic      metric.Float64Histogram
	maintainability metric.Float64Histogram
	cacheHits       metric.Int64Counter
	cacheMisses     metric.Int64Counter
}

// NewAnalysisMetrics creates analysis metric instruments from the given meter.
func NewAnalysisMetrics(mt metric.Meter) (*AnalysisMetrics, error) {
	modules, err := mt.Int64Counter(metricModulesTotal,
		metric.WithDescription("Total modules analysed, by outcome"),
		metric.WithUnit("{module}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricModulesTotal, err)
	}

	duration, err := mt.Float64Histogram(metricModuleDuration,
		metric.WithDescription("Per-module analysis duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricModuleDuration, err)
	}

	cyclomatic, err := mt.Float64Histogram(metricCyclomatic,
		metric.WithDescription("Per-module average cyclomatic complexity"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCyclomatic, err)
	}

	maintainability, err := mt.Float64Histogram(metricMaintainability,
		metric.WithDescription("Per-module maintainability index"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricMaintainability, err)
	}

	hits, err := mt.Int64Counter(metricCacheHitsTotal,
		metric.WithDescription("Result cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheHitsTotal, err)
	}

	misses, err := mt.Int64Counter(metricCacheMissesTotal,
		metric.WithDescription("Result cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheMissesTotal, err)
	}

	return &AnalysisMetrics{
		modulesTotal:    modules,
		moduleDuration:  duration,
		cyclomatic:      cyclomatic,
		maintainability: maintainability,
		cacheHits:       hits,
		cacheMisses:     misses,
	}, nil
}

// RecordModule records the outcome of analysing a single module. Safe to
// call on a nil receiver (no-op), so callers need not branch on whether
// metrics are enabled.
func (am *AnalysisMetrics) RecordModule(ctx context.Context, d time.Duration, cyclomatic, maintainability float64, err error) {
	if am == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	attrs := metric.WithAttributes(attribute.String(attrOutcome, outcome))
	am.modulesTotal.Add(ctx, 1, attrs)
	am.moduleDuration.Record(ctx, d.Seconds(), attrs)

	if err == nil {
		am.cyclomatic.Record(ctx, cyclomatic)
		am.maintainability.Record(ctx, maintainability)
	}
}

// RecordCache records a single cache lookup outcome.
func (am *AnalysisMetrics) RecordCache(ctx context.Context, hit bool) {
	if am == nil {
		return
	}

	if hit {
		am.cacheHits.Add(ctx, 1)

		return
	}

	am.cacheMisses.Add(ctx, 1)
}
