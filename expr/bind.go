package expr

import (
	"github.com/kbukum/flare/errors"
)

// Columns returns the column indices referenced by e, left to right.
// Repeated references are listed each time they occur.
func Columns(e Expr) []int {
	var out []int
	walk(e, func(n Expr) {
		if c, ok := n.(*Column); ok {
			out = append(out, c.Index)
		}
	})
	return out
}

// Bind checks that every column referenced by e exists in rows of the given
// arity. Run it once when a plan is built so out-of-range references fail
// before any row is pulled.
func Bind(e Expr, arity int) error {
	for _, idx := range Columns(e) {
		if idx < 0 || idx >= arity {
			return errors.ColumnOutOfRange(idx, arity).WithDetail("expr", e.String())
		}
	}
	return nil
}

func walk(e Expr, fn func(Expr)) {
	if e == nil {
		return
	}
	fn(e)
	switch n := e.(type) {
	case *Arith:
		walk(n.Left, fn)
		walk(n.Right, fn)
	case *Rel:
		walk(n.Left, fn)
		walk(n.Right, fn)
	case *Logic:
		walk(n.Left, fn)
		walk(n.Right, fn)
	case *Not:
		walk(n.Operand, fn)
	}
}
