package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/flare/errors"
	"github.com/kbukum/flare/logger"
	"github.com/kbukum/flare/pipeline"
	"github.com/kbukum/flare/source"
)

// TextFile returns a pipeline over the lines of path. The file is opened
// and released here, so a missing, unreadable or directory path fails now
// with SOURCE_UNAVAILABLE. The file is opened again each time the pipeline
// is pulled and closed when the pull ends.
func (e *Engine) TextFile(path string) (*pipeline.Pipeline[string], error) {
	lines, err := source.OpenLines(e.fs, path, e.opts)
	if err != nil {
		return nil, err
	}
	if err := lines.Close(); err != nil {
		return nil, errors.SourceUnavailable(path, err)
	}

	return pipeline.FromFunc(func(context.Context) pipeline.Iterator[string] {
		return e.open(path)
	}), nil
}

// TextFiles concatenates the lines of every path in order. All paths are
// checked before any is opened.
func (e *Engine) TextFiles(paths ...string) (*pipeline.Pipeline[string], error) {
	sources := make([]*pipeline.Pipeline[string], 0, len(paths))
	for _, path := range paths {
		p, err := e.TextFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}
	return pipeline.Concat(sources...), nil
}

// Slice returns a pipeline over in-memory records.
func Slice[T any](records []T) *pipeline.Pipeline[T] {
	return pipeline.FromSlice(records)
}

func (e *Engine) open(path string) pipeline.Iterator[string] {
	id := uuid.NewString()
	lines, err := source.OpenLines(e.fs, path, e.opts)
	if err != nil {
		e.log.Warn("source open failed", logger.Fields(
			logger.FieldSourceID, id,
			logger.FieldPath, path,
			logger.FieldError, err.Error(),
		))
		return &failedIter[string]{err: err}
	}
	e.log.Debug("source opened", logger.Fields(logger.FieldSourceID, id, logger.FieldPath, path))
	return &trackedLines{Lines: lines, id: id, log: e.log}
}

// trackedLines logs when its source is released.
type trackedLines struct {
	*source.Lines
	id     string
	log    *logger.Logger
	closed bool
}

func (t *trackedLines) Close() error {
	err := t.Lines.Close()
	if !t.closed {
		t.closed = true
		t.log.Debug("source closed", logger.Fields(
			logger.FieldSourceID, t.id,
			logger.FieldPath, t.Path(),
			logger.FieldRecords, t.Records(),
		))
	}
	return err
}

// failedIter reports err once, then end of stream.
type failedIter[T any] struct {
	err error
}

func (it *failedIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	err := it.err
	it.err = nil
	return zero, false, err
}

func (it *failedIter[T]) Close() error { return nil }
