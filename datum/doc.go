// Package datum defines the value model every other flare package operates on.
//
// A Datum is a single typed scalar. Its kind is fixed at construction and
// values are copied, never shared. A Row is an ordered, fixed-arity tuple of
// Datums addressed by zero-based column index.
//
// Comparison is only defined between values of the same kind; comparing
// across kinds, or involving NULL, is reported as an unresolved-operand
// error rather than coerced.
//
// # Usage
//
//	row := datum.NewRow(datum.Int(3), datum.Int(7))
//	v, err := row.Column(1) // INT 7
//	c, err := datum.Compare(v, datum.Int(10)) // -1
package datum
