package testutil

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// MemFs returns an in-memory file system holding files (path -> content).
func MemFs(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return fs
}

// Telemetry records spans and metrics produced during a test.
type Telemetry struct {
	Spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
	meters *sdkmetric.MeterProvider
}

// InstallTelemetry installs a recording tracer provider as the global one
// and restores the previous provider when the test ends. Metrics are only
// recorded for instruments created on Meter.
func InstallTelemetry(t testing.TB) *Telemetry {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})
	return &Telemetry{Spans: spans, reader: reader, meters: mp}
}

// Meter returns a meter whose measurements Counter can read.
func (tel *Telemetry) Meter() metric.Meter {
	return tel.meters.Meter("testutil")
}

// Counter returns the sum over all data points of the int64 counter name.
func (tel *Telemetry) Counter(t testing.TB, name string) int64 {
	t.Helper()
	var total int64
	for _, m := range tel.collect(t) {
		if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == name {
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

// HistogramCount returns the number of samples recorded on the float64
// histogram name.
func (tel *Telemetry) HistogramCount(t testing.TB, name string) uint64 {
	t.Helper()
	var total uint64
	for _, m := range tel.collect(t) {
		if h, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == name {
			for _, dp := range h.DataPoints {
				total += dp.Count
			}
		}
	}
	return total
}

func (tel *Telemetry) collect(t testing.TB) []metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := tel.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	var out []metricdata.Metrics
	for _, sm := range rm.ScopeMetrics {
		out = append(out, sm.Metrics...)
	}
	return out
}
