package observe

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumFor returns the counter value of the data point whose attribute key has
// value, and whether it was found.
func sumFor(t *testing.T, rm metricdata.ResourceMetrics, name, key, value string) (int64, bool) {
	t.Helper()
	met := findMetric(rm, name)
	if met == nil {
		t.Fatalf("metric %q not found", name)
	}
	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("metric %q is not a sum", name)
	}
	for _, dp := range sum.DataPoints {
		for _, kv := range dp.Attributes.ToSlice() {
			if string(kv.Key) == key && kv.Value.AsString() == value {
				return dp.Value, true
			}
		}
	}
	return 0, false
}

func TestRecordRun(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordRun(ctx, "success")
	m.RecordRun(ctx, "success")
	m.RecordRun(ctx, "empty")

	rm := collect(t, reader)
	if got, ok := sumFor(t, rm, "lingodrill.pipeline.runs", "status", "success"); !ok || got != 2 {
		t.Errorf("success runs = %d (found %v), want 2", got, ok)
	}
	if got, ok := sumFor(t, rm, "lingodrill.pipeline.runs", "status", "empty"); !ok || got != 1 {
		t.Errorf("empty runs = %d (found %v), want 1", got, ok)
	}
}

func TestRecordExercisesSkipsZero(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordExercises(ctx, "flashcards", 5)
	m.RecordExercises(ctx, "spelling", 0)

	rm := collect(t, reader)
	if got, ok := sumFor(t, rm, "lingodrill.exercises.generated", "kind", "flashcards"); !ok || got != 5 {
		t.Errorf("flashcards = %d (found %v), want 5", got, ok)
	}
	if _, ok := sumFor(t, rm, "lingodrill.exercises.generated", "kind", "spelling"); ok {
		t.Error("zero count should not produce a data point")
	}
}

func TestRecordFallbackAndQuality(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordFallback(ctx, "translator")
	m.RecordQualityIssues(ctx, "warning", 3)

	rm := collect(t, reader)
	if got, _ := sumFor(t, rm, "lingodrill.collaborator.fallbacks", "collaborator", "translator"); got != 1 {
		t.Errorf("fallbacks = %d, want 1", got)
	}
	if got, _ := sumFor(t, rm, "lingodrill.quality.issues", "severity", "warning"); got != 3 {
		t.Errorf("quality issues = %d, want 3", got)
	}
}

func TestRecordStage(t *testing.T) {
	m, reader := newTestMetrics(t)
	m.RecordStage(context.Background(), "extract", time.Now().Add(-10*time.Millisecond))

	met := findMetric(collect(t, reader), "lingodrill.pipeline.stage.duration")
	if met == nil {
		t.Fatal("metric not found")
	}
	hist, ok := met.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("metric is not a histogram")
	}
	if len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 1 {
		t.Errorf("data points = %+v, want one sample", hist.DataPoints)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordRun(ctx, "success")
	m.RecordStage(ctx, "x", time.Now())
	m.RecordExercises(ctx, "x", 1)
	m.RecordFallback(ctx, "x")
	m.RecordQualityIssues(ctx, "error", 1)
}
