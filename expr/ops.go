package expr

// ArithOp is an integer arithmetic operator.
type ArithOp uint8

const (
	// OpAdd adds two Int operands, wrapping on overflow.
	OpAdd ArithOp = iota
	// OpSub subtracts the right operand from the left.
	OpSub
	// OpMul multiplies two Int operands.
	OpMul
	// OpDiv divides, truncating toward zero. A zero divisor is an error.
	OpDiv
)

// String returns the operator symbol.
func (op ArithOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// RelOp is a relational comparison operator.
type RelOp uint8

const (
	// OpEq is equality.
	OpEq RelOp = iota
	// OpNe is inequality.
	OpNe
	// OpGt is greater than.
	OpGt
	// OpGe is greater than or equal.
	OpGe
	// OpLt is less than.
	OpLt
	// OpLe is less than or equal.
	OpLe
)

// String returns the operator symbol.
func (op RelOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	default:
		return "?"
	}
}

// LogicOp is a binary boolean connective. Negation is the Not node.
type LogicOp uint8

const (
	// OpAnd is logical conjunction.
	OpAnd LogicOp = iota
	// OpOr is logical disjunction.
	OpOr
)

// String returns the operator symbol.
func (op LogicOp) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}
