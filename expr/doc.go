// Package expr provides typed expression trees evaluated against a single
// datum.Row.
//
// A tree is built once from Column, Literal, Arith, Rel, Logic and Not nodes
// and may then be evaluated any number of times. Evaluation is a pure
// function of (tree, row): nothing is cached and the tree is never mutated.
//
// Operators apply to exactly one operand kind. Arithmetic and relational
// operators take INT operands, logical operators take BOOL operands. Any other
// combination is an UNRESOLVED_OPERAND error: the evaluator expects a prior
// planning phase to have lined operand kinds up and never coerces.
//
// # Usage
//
//	e := expr.Gt(expr.Add(expr.Col(0), expr.Col(1)), expr.IntLit(30))
//	v, err := expr.Eval(e, datum.NewRow(datum.Int(20), datum.Int(15))) // BOOL true
//	fmt.Println(e) // (($0 + $1) > 30)
package expr
