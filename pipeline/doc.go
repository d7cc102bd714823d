// Package pipeline provides composable, pull-based record pipelines.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, ForEach or Iter. Each stage pulls from the stage it wraps on demand.
// A pull on the outermost stage triggers at most one pull on its upstream
// plus the stage's own transformation, so nothing is buffered or read ahead.
//
// Everything runs on the caller's goroutine. There are no concurrent,
// filtering or flattening stages: every transformation is 1:1.
//
// # End of stream
//
// Next returns (zero, false, nil) at end of stream and a non-nil error on
// failure; the two are never confused. Once a stage has reported either,
// every later call returns (zero, false, nil).
//
// # Operators
//
//   - Map: transform each value
//   - Tap: side-effect without altering the value (logging, metrics)
//   - Concat: join pipelines sequentially
//
// # Usage
//
//	src := pipeline.FromSlice([]string{"ab", "", "xyz"})
//	lengths := pipeline.Map(src, func(_ context.Context, s string) (int, error) {
//	    return len(s), nil
//	})
//	results, _ := pipeline.Collect(ctx, lengths) // [2 0 3]
package pipeline
