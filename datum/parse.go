package datum

import (
	"strconv"
	"strings"

	"github.com/kbukum/flare/errors"
)

// Parse converts one text field into a datum: integers become INT,
// "true"/"false" become BOOL, the empty string becomes NULL and anything
// else is kept as TEXT. Surrounding whitespace is ignored.
func Parse(field string) Datum {
	s := strings.TrimSpace(field)
	if s == "" {
		return Null()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Text(s)
}

// ParseRow splits a delimited line into a row of parsed fields.
// An empty separator is rejected with INVALID_RECORD.
func ParseRow(line, sep string) (Row, error) {
	if sep == "" {
		return Row{}, errors.InvalidRecord("empty field separator")
	}
	fields := strings.Split(line, sep)
	cols := make([]Datum, len(fields))
	for i, f := range fields {
		cols[i] = Parse(f)
	}
	return Row{cols: cols}, nil
}
