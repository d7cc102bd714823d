package datum

import (
	"cmp"
	"strings"

	"github.com/kbukum/flare/errors"
)

// Compare orders two datums of the same kind, returning -1, 0 or +1.
// BOOL orders false before true. Mismatched kinds and NULL operands are
// reported as an UNRESOLVED_OPERAND error.
func Compare(a, b Datum) (int, error) {
	if a.kind != b.kind || a.kind == KindNull {
		return 0, errors.UnresolvedOperand("compare", a.kind.String(), b.kind.String())
	}
	switch a.kind {
	case KindInt, KindBool:
		return cmp.Compare(a.i, b.i), nil
	case KindFloat:
		return cmp.Compare(a.f, b.f), nil
	case KindText:
		return strings.Compare(a.s, b.s), nil
	default:
		return 0, errors.UnresolvedOperand("compare", a.kind.String(), b.kind.String())
	}
}

// Equal reports whether two datums of the same kind hold the same value.
// It fails the same way Compare does on mismatched kinds.
func Equal(a, b Datum) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
