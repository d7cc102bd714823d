package engine

import (
	"context"
	"fmt"

	"github.com/kbukum/flare/datum"
	"github.com/kbukum/flare/errors"
	"github.com/kbukum/flare/expr"
	"github.com/kbukum/flare/pipeline"
)

// Lengths maps each text record to its length in bytes.
func Lengths(p *pipeline.Pipeline[string]) *pipeline.Pipeline[int] {
	return pipeline.Map(p, func(_ context.Context, record string) (int, error) {
		return len(record), nil
	})
}

// ParseRows splits each text record on sep into a row of parsed fields.
// An empty separator is rejected here rather than on the first record.
func ParseRows(p *pipeline.Pipeline[string], sep string) (*pipeline.Pipeline[datum.Row], error) {
	if sep == "" {
		return nil, errors.InvalidRecord("empty field separator")
	}
	return pipeline.Map(p, func(_ context.Context, record string) (datum.Row, error) {
		return datum.ParseRow(record, sep)
	}), nil
}

// RequireArity fails with INVALID_RECORD on the first row whose arity is not
// arity. Rows are passed through unchanged.
func RequireArity(p *pipeline.Pipeline[datum.Row], arity int) *pipeline.Pipeline[datum.Row] {
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[datum.Row] {
		record := 0
		return mapIter(p.Iter(ctx), func(row datum.Row) (datum.Row, error) {
			record++
			if row.Arity() != arity {
				return datum.Row{}, errors.InvalidRecord(
					fmt.Sprintf("record %d has %d fields, want %d", record, row.Arity(), arity)).
					WithDetail("record", record)
			}
			return row, nil
		})
	})
}

// Project evaluates exprs against each row and emits a row of the results.
// Evaluation errors are fatal and end the stream.
func Project(p *pipeline.Pipeline[datum.Row], exprs ...expr.Expr) *pipeline.Pipeline[datum.Row] {
	return pipeline.Map(p, func(_ context.Context, row datum.Row) (datum.Row, error) {
		out := make([]datum.Datum, len(exprs))
		for i, e := range exprs {
			v, err := expr.Eval(e, row)
			if err != nil {
				return datum.Row{}, err
			}
			out[i] = v
		}
		return datum.NewRow(out...), nil
	})
}

// ProjectBound is Project with every column reference checked against arity
// up front. Rows are then required to have exactly that arity.
func ProjectBound(p *pipeline.Pipeline[datum.Row], arity int, exprs ...expr.Expr) (*pipeline.Pipeline[datum.Row], error) {
	for _, e := range exprs {
		if err := expr.Bind(e, arity); err != nil {
			return nil, err
		}
	}
	return Project(RequireArity(p, arity), exprs...), nil
}

// Select evaluates e against each row.
func Select(p *pipeline.Pipeline[datum.Row], e expr.Expr) *pipeline.Pipeline[datum.Datum] {
	return pipeline.Map(p, func(_ context.Context, row datum.Row) (datum.Datum, error) {
		return expr.Eval(e, row)
	})
}

// mapIter adapts fn into an iterator over source without going through a
// Pipeline, for stages that keep per-pull state.
func mapIter[I, O any](source pipeline.Iterator[I], fn func(I) (O, error)) pipeline.Iterator[O] {
	return &funcIter[I, O]{source: source, fn: fn}
}

type funcIter[I, O any] struct {
	source pipeline.Iterator[I]
	fn     func(I) (O, error)
}

func (it *funcIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	v, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := it.fn(v)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

func (it *funcIter[I, O]) Close() error { return it.source.Close() }
