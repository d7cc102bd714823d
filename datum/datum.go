package datum

import (
	"strconv"
)

// Kind identifies the variant held by a Datum.
type Kind uint8

const (
	// KindNull is the absent value. It is the zero Kind.
	KindNull Kind = iota
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindBool is a boolean.
	KindBool
	// KindFloat is a 64-bit floating point number.
	KindFloat
	// KindText is a UTF-8 string.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInt:
		return "INT"
	case KindBool:
		return "BOOL"
	case KindFloat:
		return "FLOAT"
	case KindText:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// Datum is a single typed scalar value. The zero Datum is NULL.
//
// Only the field matching kind is meaningful; the others stay zero so that
// two Datums of the same kind and value are == comparable.
type Datum struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an INT datum.
func Int(v int64) Datum { return Datum{kind: KindInt, i: v} }

// Bool returns a BOOL datum.
func Bool(v bool) Datum {
	d := Datum{kind: KindBool}
	if v {
		d.i = 1
	}
	return d
}

// Float returns a FLOAT datum.
func Float(v float64) Datum { return Datum{kind: KindFloat, f: v} }

// Text returns a TEXT datum.
func Text(v string) Datum { return Datum{kind: KindText, s: v} }

// Null returns the NULL datum.
func Null() Datum { return Datum{} }

// Kind returns the variant of d.
func (d Datum) Kind() Kind { return d.kind }

// IsNull reports whether d is NULL.
func (d Datum) IsNull() bool { return d.kind == KindNull }

// AsInt returns the integer value and true if d is an INT.
func (d Datum) AsInt() (int64, bool) {
	if d.kind != KindInt {
		return 0, false
	}
	return d.i, true
}

// AsBool returns the boolean value and true if d is a BOOL.
func (d Datum) AsBool() (bool, bool) {
	if d.kind != KindBool {
		return false, false
	}
	return d.i != 0, true
}

// AsFloat returns the float value and true if d is a FLOAT.
func (d Datum) AsFloat() (float64, bool) {
	if d.kind != KindFloat {
		return 0, false
	}
	return d.f, true
}

// AsText returns the string value and true if d is a TEXT.
func (d Datum) AsText() (string, bool) {
	if d.kind != KindText {
		return "", false
	}
	return d.s, true
}

// String renders d for display: 3, true, 1.5, "abc", NULL.
func (d Datum) String() string {
	switch d.kind {
	case KindInt:
		return strconv.FormatInt(d.i, 10)
	case KindBool:
		return strconv.FormatBool(d.i != 0)
	case KindFloat:
		return strconv.FormatFloat(d.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(d.s)
	default:
		return "NULL"
	}
}
