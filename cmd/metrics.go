package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/abhisek/lingodrill/internal/observe"
)

// metricsDump collects pipeline metrics in memory so one command can print
// them when it finishes.
type metricsDump struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	metrics  *observe.Metrics
}

func newMetricsDump() (*metricsDump, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := observe.NewMetrics(provider)
	if err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}
	return &metricsDump{reader: reader, provider: provider, metrics: m}, nil
}

// Write collects every instrument and prints one line per data point.
func (d *metricsDump) Write(ctx context.Context, w io.Writer) error {
	var rm metricdata.ResourceMetrics
	if err := d.reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "%s%s %d\n", m.Name, formatAttrs(dp.Attributes), dp.Value)
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "%s%s count=%d sum=%.6f%s\n",
						m.Name, formatAttrs(dp.Attributes), dp.Count, dp.Sum, m.Unit)
				}
			}
		}
	}
	return nil
}

func (d *metricsDump) Shutdown(ctx context.Context) error {
	return d.provider.Shutdown(ctx)
}

func formatAttrs(set attribute.Set) string {
	if set.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, set.Len())
	for _, kv := range set.ToSlice() {
		parts = append(parts, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
