package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/flare/errors"
	"github.com/kbukum/flare/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns defaults for a local collector.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP HTTP.
// The caller shuts the provider down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(config.Endpoint)}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("creating metric exporter: %w", err))
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(newResource(config.ServiceName, config.ServiceVersion, config.Environment)),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Instrument names.
const (
	MetricRecordsTotal     = "records.total"
	MetricErrorsTotal      = "errors.total"
	MetricPipelineDuration = "pipeline.duration"
)

// PipelineMetrics holds the instruments recorded by instrumented pipelines.
type PipelineMetrics struct {
	recordsTotal metric.Int64Counter
	errorsTotal  metric.Int64Counter
	duration     metric.Float64Histogram
}

// NewPipelineMetrics creates pipeline instruments on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	recordsTotal, err := meter.Int64Counter(MetricRecordsTotal,
		metric.WithDescription("Records produced by a pipeline stage"),
	)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("creating %s counter: %w", MetricRecordsTotal, err))
	}

	errorsTotal, err := meter.Int64Counter(MetricErrorsTotal,
		metric.WithDescription("Fatal pipeline failures by stage and code"),
	)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("creating %s counter: %w", MetricErrorsTotal, err))
	}

	duration, err := meter.Float64Histogram(MetricPipelineDuration,
		metric.WithDescription("Time from first pull to end of stream"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("creating %s histogram: %w", MetricPipelineDuration, err))
	}

	return &PipelineMetrics{
		recordsTotal: recordsTotal,
		errorsTotal:  errorsTotal,
		duration:     duration,
	}, nil
}

// RecordRecord counts one record produced by stage.
func (m *PipelineMetrics) RecordRecord(ctx context.Context, stage string) {
	m.recordsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, stage)))
}

// RecordError counts a failure of stage. AppErrors are labelled with their code.
func (m *PipelineMetrics) RecordError(ctx context.Context, stage string, err error) {
	code := string(errors.CodeOf(err))
	if code == "" {
		code = "UNKNOWN"
	}
	m.errorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrErrorCode, code),
	))
}

// RecordDuration records how long stage ran and whether it failed.
func (m *PipelineMetrics) RecordDuration(ctx context.Context, stage string, d time.Duration, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String("status", status),
	))
}
