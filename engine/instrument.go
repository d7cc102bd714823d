package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/flare/observability"
	"github.com/kbukum/flare/pipeline"
)

// Instrument wraps p so each pull runs inside a pipeline.run span named by
// stage. Records and failures are counted on metrics when it is non-nil.
// The stage is 1:1 and holds no records.
func Instrument[T any](p *pipeline.Pipeline[T], stage string, metrics *observability.PipelineMetrics) *pipeline.Pipeline[T] {
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[T] {
		spanCtx, span := observability.StartSpan(ctx, observability.SpanPipelineRun,
			trace.WithAttributes(attribute.String(observability.AttrStage, stage)))
		return &instrumentedIter[T]{
			source:  p.Iter(spanCtx),
			stage:   stage,
			metrics: metrics,
			span:    span,
			start:   time.Now(),
		}
	})
}

type instrumentedIter[T any] struct {
	source  pipeline.Iterator[T]
	stage   string
	metrics *observability.PipelineMetrics
	span    trace.Span
	start   time.Time
	records int
	ended   bool
}

func (it *instrumentedIter[T]) Next(ctx context.Context) (T, bool, error) {
	v, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		if it.metrics != nil {
			it.metrics.RecordError(ctx, it.stage, err)
		}
		it.end(ctx, err)
	case !ok:
		it.end(ctx, nil)
	default:
		it.records++
		if it.metrics != nil {
			it.metrics.RecordRecord(ctx, it.stage)
		}
	}
	return v, ok, err
}

func (it *instrumentedIter[T]) Close() error {
	it.end(context.Background(), nil)
	return it.source.Close()
}

func (it *instrumentedIter[T]) end(ctx context.Context, err error) {
	if it.ended {
		return
	}
	it.ended = true
	if it.metrics != nil {
		it.metrics.RecordDuration(ctx, it.stage, time.Since(it.start), err != nil)
	}
	it.span.SetAttributes(attribute.Int(observability.AttrRecords, it.records))
	observability.EndSpan(it.span, err)
}
