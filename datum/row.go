package datum

import (
	"strings"

	"github.com/kbukum/flare/errors"
)

// Row is an ordered, fixed-arity tuple of datums.
type Row struct {
	cols []Datum
}

// NewRow builds a row from the given values. The slice is copied.
func NewRow(cols ...Datum) Row {
	return Row{cols: append([]Datum(nil), cols...)}
}

// Arity returns the number of columns.
func (r Row) Arity() int { return len(r.cols) }

// Column returns a copy of the value at index, or COLUMN_OUT_OF_RANGE.
func (r Row) Column(index int) (Datum, error) {
	if index < 0 || index >= len(r.cols) {
		return Datum{}, errors.ColumnOutOfRange(index, len(r.cols))
	}
	return r.cols[index], nil
}

// Values returns a copy of the row's columns.
func (r Row) Values() []Datum {
	return append([]Datum(nil), r.cols...)
}

// String renders the row as [v0, v1, ...].
func (r Row) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range r.cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteByte(']')
	return b.String()
}
