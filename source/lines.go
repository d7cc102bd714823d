package source

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/kbukum/flare/errors"
)

// Lines is a pipeline.Iterator[string] over the lines of one file.
// Line terminators ("\n" or "\r\n") are stripped; a final line without a
// terminator is still a record.
type Lines struct {
	path    string
	file    afero.File
	scanner *bufio.Scanner
	max     int
	records int
	done    bool
	closed  bool
	// closeErr keeps the result of releasing the file early so Close can report it.
	closeErr error
}

// OpenLines opens path on fs and returns a line iterator over it.
func OpenLines(fs afero.Fs, path string, opts Options) (*Lines, error) {
	opts.ApplyDefaults()

	info, err := fs.Stat(path)
	if err != nil {
		return nil, errors.SourceUnavailable(path, err)
	}
	if info.IsDir() {
		return nil, errors.SourceUnavailable(path, fmt.Errorf("%s is a directory", path))
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.SourceUnavailable(path, err)
	}

	scanner := bufio.NewScanner(f)
	// +2 leaves room for a "\r\n" terminator after a maximum-length record.
	scanner.Buffer(make([]byte, 0, opts.BufferBytes), opts.MaxRecordBytes+2)

	return &Lines{path: path, file: f, scanner: scanner, max: opts.MaxRecordBytes}, nil
}

// Path returns the path the iterator reads from.
func (l *Lines) Path() string { return l.path }

// Records returns the number of records produced so far.
func (l *Lines) Records() int { return l.records }

// Next returns the next line. The file is released as soon as the stream
// ends, whether by exhaustion, read failure or context cancellation.
func (l *Lines) Next(ctx context.Context) (string, bool, error) {
	if l.done {
		return "", false, nil
	}
	if err := ctx.Err(); err != nil {
		l.finish()
		return "", false, err
	}
	if l.scanner.Scan() {
		// The scanner limit admits one extra byte on "\n" or unterminated lines.
		if len(l.scanner.Bytes()) > l.max {
			l.finish()
			return "", false, errors.RecordReadFailed(l.path, l.records+1, bufio.ErrTooLong)
		}
		l.records++
		return l.scanner.Text(), true, nil
	}
	err := l.scanner.Err()
	l.finish()
	if err != nil {
		return "", false, errors.RecordReadFailed(l.path, l.records+1, err)
	}
	return "", false, nil
}

// Close releases the file. It is safe to call more than once.
func (l *Lines) Close() error {
	l.finish()
	err := l.closeErr
	l.closeErr = nil
	return err
}

func (l *Lines) finish() {
	l.done = true
	if l.closed {
		return
	}
	l.closed = true
	l.closeErr = l.file.Close()
}
