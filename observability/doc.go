// Package observability wires OpenTelemetry tracing and metrics for flare
// pipelines.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("flare"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("flare"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewPipelineMetrics(observability.Meter("flare"))
//	metrics.RecordRecord(ctx, "lengths")
//
// Without Init* calls the global no-op providers are used, so instrumented
// pipelines cost almost nothing.
package observability
