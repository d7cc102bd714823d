package pipeline

import (
	"context"
)

// Map transforms each value using fn. Exactly one output is produced for
// each input; a failing fn ends the stream with its error.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: p.create(ctx), fn: fn}
		},
	}
}

// Tap calls fn as a side-effect for each value, then passes the value through unchanged.
// Use for logging or metrics.
func Tap[T any](p *Pipeline[T], fn func(context.Context, T) error) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &tapIter[T]{source: p.create(ctx), fn: fn}
		},
	}
}

// Concat joins multiple pipelines sequentially.
// All values from the first pipeline are yielded before the second, etc.
// Each upstream is created only when the previous one is exhausted.
func Concat[T any](pipelines ...*Pipeline[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &concatIter[T]{pipelines: pipelines}
		},
	}
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
	done   bool
}

func (it *mapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	var zero O
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.done = true
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		it.done = true
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
	done   bool
}

func (it *tapIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.done = true
		return zero, false, err
	}
	if err := it.fn(ctx, val); err != nil {
		it.done = true
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	pipelines []*Pipeline[T]
	index     int
	current   Iterator[T]
	done      bool
}

func (it *concatIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	var zero T
	for !it.done && it.index < len(it.pipelines) {
		if it.current == nil {
			it.current = it.pipelines[it.index].create(ctx)
		}
		val, ok, err := it.current.Next(ctx)
		if err != nil {
			it.done = true
			return zero, false, err
		}
		if ok {
			return val, true, nil
		}
		if err := it.current.Close(); err != nil {
			it.current = nil
			it.done = true
			return zero, false, err
		}
		it.current = nil
		it.index++
	}
	it.done = true
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	if it.current == nil {
		return nil
	}
	err := it.current.Close()
	it.current = nil
	return err
}
