package expr

import (
	"fmt"

	"github.com/kbukum/flare/datum"
	"github.com/kbukum/flare/errors"
)

// Eval computes the value of e over row.
//
// Both operands of a binary node are always evaluated, left first, before the
// operator is applied. Errors from a sub-expression are returned unchanged
// and no partial value is produced.
func Eval(e Expr, row datum.Row) (datum.Datum, error) {
	switch n := e.(type) {
	case *Column:
		return row.Column(n.Index)
	case *Literal:
		return n.Value, nil
	case *Arith:
		l, r, err := evalOperands(n.Left, n.Right, row)
		if err != nil {
			return datum.Datum{}, err
		}
		return evalArith(l, n.Op, r)
	case *Rel:
		l, r, err := evalOperands(n.Left, n.Right, row)
		if err != nil {
			return datum.Datum{}, err
		}
		return evalRel(l, n.Op, r)
	case *Logic:
		l, r, err := evalOperands(n.Left, n.Right, row)
		if err != nil {
			return datum.Datum{}, err
		}
		return evalLogic(l, n.Op, r)
	case *Not:
		v, err := Eval(n.Operand, row)
		if err != nil {
			return datum.Datum{}, err
		}
		b, ok := v.AsBool()
		if !ok {
			return datum.Datum{}, errors.UnresolvedOperand("!", v.Kind().String(), "")
		}
		return datum.Bool(!b), nil
	default:
		return datum.Datum{}, errors.UnsupportedExpression(fmt.Sprintf("%T", e))
	}
}

func evalOperands(left, right Expr, row datum.Row) (datum.Datum, datum.Datum, error) {
	l, err := Eval(left, row)
	if err != nil {
		return datum.Datum{}, datum.Datum{}, err
	}
	r, err := Eval(right, row)
	if err != nil {
		return datum.Datum{}, datum.Datum{}, err
	}
	return l, r, nil
}

// evalArith applies op with int64 two's-complement semantics. Division
// truncates toward zero.
func evalArith(l datum.Datum, op ArithOp, r datum.Datum) (datum.Datum, error) {
	a, okA := l.AsInt()
	b, okB := r.AsInt()
	if !okA || !okB {
		return datum.Datum{}, errors.UnresolvedOperand(op.String(), l.Kind().String(), r.Kind().String())
	}
	switch op {
	case OpAdd:
		return datum.Int(a + b), nil
	case OpSub:
		return datum.Int(a - b), nil
	case OpMul:
		return datum.Int(a * b), nil
	case OpDiv:
		if b == 0 {
			return datum.Datum{}, errors.DivisionByZero()
		}
		return datum.Int(a / b), nil
	default:
		return datum.Datum{}, errors.UnsupportedExpression(fmt.Sprintf("arithmetic operator %d", op))
	}
}

func evalRel(l datum.Datum, op RelOp, r datum.Datum) (datum.Datum, error) {
	a, okA := l.AsInt()
	b, okB := r.AsInt()
	if !okA || !okB {
		return datum.Datum{}, errors.UnresolvedOperand(op.String(), l.Kind().String(), r.Kind().String())
	}
	switch op {
	case OpEq:
		return datum.Bool(a == b), nil
	case OpNe:
		return datum.Bool(a != b), nil
	case OpGt:
		return datum.Bool(a > b), nil
	case OpGe:
		return datum.Bool(a >= b), nil
	case OpLt:
		return datum.Bool(a < b), nil
	case OpLe:
		return datum.Bool(a <= b), nil
	default:
		return datum.Datum{}, errors.UnsupportedExpression(fmt.Sprintf("relational operator %d", op))
	}
}

func evalLogic(l datum.Datum, op LogicOp, r datum.Datum) (datum.Datum, error) {
	a, okA := l.AsBool()
	b, okB := r.AsBool()
	if !okA || !okB {
		return datum.Datum{}, errors.UnresolvedOperand(op.String(), l.Kind().String(), r.Kind().String())
	}
	switch op {
	case OpAnd:
		return datum.Bool(a && b), nil
	case OpOr:
		return datum.Bool(a || b), nil
	default:
		return datum.Datum{}, errors.UnsupportedExpression(fmt.Sprintf("logical operator %d", op))
	}
}
