// Package observe holds the OpenTelemetry metric instruments recorded by the
// exercise pipeline.
//
// [DefaultMetrics] uses the global meter provider, which is a no-op unless the
// host program installs one. Tests should use [NewMetrics] with their own
// [metric.MeterProvider].
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/abhisek/lingodrill"

// Metrics holds the pipeline's metric instruments. Safe for concurrent use.
type Metrics struct {
	// Runs counts pipeline runs. Attribute: status (success, empty, error).
	Runs metric.Int64Counter

	// StageDuration tracks how long each pipeline stage takes. Attribute:
	// stage.
	StageDuration metric.Float64Histogram

	// Exercises counts generated exercise items. Attribute: kind.
	Exercises metric.Int64Counter

	// Fallbacks counts collaborator calls that were unavailable and fell back
	// to the rule-based path. Attribute: collaborator.
	Fallbacks metric.Int64Counter

	// QualityIssues counts quality gate findings. Attribute: severity.
	QualityIssues metric.Int64Counter
}

// stageBuckets are histogram boundaries in seconds. Rule-based stages finish
// in microseconds; collaborator-backed stages can take seconds.
var stageBuckets = []float64{
	0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30,
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Runs, err = m.Int64Counter("lingodrill.pipeline.runs",
		metric.WithDescription("Pipeline runs by outcome status."),
	); err != nil {
		return nil, err
	}
	if met.StageDuration, err = m.Float64Histogram("lingodrill.pipeline.stage.duration",
		metric.WithDescription("Latency of each pipeline stage."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(stageBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Exercises, err = m.Int64Counter("lingodrill.exercises.generated",
		metric.WithDescription("Exercise items generated, by kind."),
	); err != nil {
		return nil, err
	}
	if met.Fallbacks, err = m.Int64Counter("lingodrill.collaborator.fallbacks",
		metric.WithDescription("Collaborator calls that fell back to rule-based output."),
	); err != nil {
		return nil, err
	}
	if met.QualityIssues, err = m.Int64Counter("lingodrill.quality.issues",
		metric.WithDescription("Quality gate findings by severity."),
	); err != nil {
		return nil, err
	}
	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] built on
// [otel.GetMeterProvider]. Panics if instrument creation fails.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordRun counts one pipeline run with the given status.
func (m *Metrics) RecordRun(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordStage records the time elapsed since start for stage.
func (m *Metrics) RecordStage(ctx context.Context, stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordExercises adds n generated items of kind.
func (m *Metrics) RecordExercises(ctx context.Context, kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Exercises.Add(ctx, int64(n), metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordFallback counts one unavailable collaborator call.
func (m *Metrics) RecordFallback(ctx context.Context, collaborator string) {
	if m == nil {
		return
	}
	m.Fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("collaborator", collaborator)))
}

// RecordQualityIssues adds n findings of severity.
func (m *Metrics) RecordQualityIssues(ctx context.Context, severity string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.QualityIssues.Add(ctx, int64(n), metric.WithAttributes(attribute.String("severity", severity)))
}
