package expr

import (
	"fmt"

	"github.com/kbukum/flare/datum"
)

// Expr is a node of an expression tree.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Types implementing [Expr].
type (
	// Column references the column at Index of the row being evaluated.
	Column struct{ Index int }

	// Literal is a constant value.
	Literal struct{ Value datum.Datum }

	// Arith combines two INT operands.
	Arith struct {
		Left  Expr
		Op    ArithOp
		Right Expr
	}

	// Rel compares two INT operands and yields a BOOL.
	Rel struct {
		Left  Expr
		Op    RelOp
		Right Expr
	}

	// Logic combines two BOOL operands.
	Logic struct {
		Left  Expr
		Op    LogicOp
		Right Expr
	}

	// Not negates a BOOL operand.
	Not struct{ Operand Expr }
)

func (*Column) isExpr()  {}
func (*Literal) isExpr() {}
func (*Arith) isExpr()   {}
func (*Rel) isExpr()     {}
func (*Logic) isExpr()   {}
func (*Not) isExpr()     {}

func (e *Column) String() string  { return fmt.Sprintf("$%d", e.Index) }
func (e *Literal) String() string { return e.Value.String() }
func (e *Arith) String() string   { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }
func (e *Rel) String() string     { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }
func (e *Logic) String() string   { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }
func (e *Not) String() string     { return fmt.Sprintf("!%s", e.Operand) }

// --- Builders ---

// Col references column index.
func Col(index int) Expr { return &Column{Index: index} }

// Lit wraps a constant.
func Lit(v datum.Datum) Expr { return &Literal{Value: v} }

// IntLit wraps an INT constant.
func IntLit(v int64) Expr { return Lit(datum.Int(v)) }

// BoolLit wraps a BOOL constant.
func BoolLit(v bool) Expr { return Lit(datum.Bool(v)) }

// MakeArith builds an arithmetic node. The node takes ownership of both children.
func MakeArith(left Expr, op ArithOp, right Expr) Expr {
	return &Arith{Left: left, Op: op, Right: right}
}

// MakeRel builds a relational node. The node takes ownership of both children.
func MakeRel(left Expr, op RelOp, right Expr) Expr {
	return &Rel{Left: left, Op: op, Right: right}
}

// MakeLogic builds a boolean connective. The node takes ownership of both children.
func MakeLogic(left Expr, op LogicOp, right Expr) Expr {
	return &Logic{Left: left, Op: op, Right: right}
}

// Add builds l + r.
func Add(l, r Expr) Expr { return MakeArith(l, OpAdd, r) }

// Sub builds l - r.
func Sub(l, r Expr) Expr { return MakeArith(l, OpSub, r) }

// Mul builds l * r.
func Mul(l, r Expr) Expr { return MakeArith(l, OpMul, r) }

// Div builds l / r.
func Div(l, r Expr) Expr { return MakeArith(l, OpDiv, r) }

// Eq builds l == r.
func Eq(l, r Expr) Expr { return MakeRel(l, OpEq, r) }

// Ne builds l != r.
func Ne(l, r Expr) Expr { return MakeRel(l, OpNe, r) }

// Gt builds l > r.
func Gt(l, r Expr) Expr { return MakeRel(l, OpGt, r) }

// Ge builds l >= r.
func Ge(l, r Expr) Expr { return MakeRel(l, OpGe, r) }

// Lt builds l < r.
func Lt(l, r Expr) Expr { return MakeRel(l, OpLt, r) }

// Le builds l <= r.
func Le(l, r Expr) Expr { return MakeRel(l, OpLe, r) }

// And builds l && r.
func And(l, r Expr) Expr { return MakeLogic(l, OpAnd, r) }

// Or builds l || r.
func Or(l, r Expr) Expr { return MakeLogic(l, OpOr, r) }

// Negate builds a Not node.
func Negate(e Expr) Expr { return &Not{Operand: e} }
