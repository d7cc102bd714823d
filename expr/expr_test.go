package expr

import (
	"reflect"
	"testing"

	"github.com/kbukum/flare/datum"
	"github.com/kbukum/flare/errors"
)

func TestString(t *testing.T) {
	tests := []struct {
		e    Expr
		want string
	}{
		{Col(0), "$0"},
		{IntLit(30), "30"},
		{Gt(Add(Col(0), Col(1)), IntLit(30)), "(($0 + $1) > 30)"},
		{Div(Sub(Col(2), IntLit(1)), Mul(IntLit(2), Col(0))), "(($2 - 1) / (2 * $0))"},
		{Le(Col(0), IntLit(1)), "($0 <= 1)"},
		{Ne(Col(0), IntLit(1)), "($0 != 1)"},
		{And(BoolLit(true), Negate(Lt(Col(1), Col(0)))), "(true && !($1 < $0))"},
		{Or(Eq(Col(0), Col(0)), Ge(Col(0), IntLit(-2))), "(($0 == $0) || ($0 >= -2))"},
		{Lit(datum.Text("a")), `"a"`},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.e.String(); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestBuilders_Ops(t *testing.T) {
	a, ok := Sub(Col(0), Col(1)).(*Arith)
	if !ok || a.Op != OpSub {
		t.Fatalf("expected *Arith with OpSub, got %#v", a)
	}
	r, ok := Le(Col(0), Col(1)).(*Rel)
	if !ok || r.Op != OpLe {
		t.Fatalf("expected *Rel with OpLe, got %#v", r)
	}
	l, ok := Or(BoolLit(true), BoolLit(false)).(*Logic)
	if !ok || l.Op != OpOr {
		t.Fatalf("expected *Logic with OpOr, got %#v", l)
	}
}

func TestColumns(t *testing.T) {
	e := And(Gt(Add(Col(2), Col(0)), IntLit(1)), Negate(Eq(Col(2), Col(4))))
	want := []int{2, 0, 2, 4}
	if got := Columns(e); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := Columns(IntLit(1)); len(got) != 0 {
		t.Errorf("literal references no columns, got %v", got)
	}
}

func TestBind(t *testing.T) {
	e := Gt(Add(Col(0), Col(1)), IntLit(30))
	if err := Bind(e, 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := Bind(e, 1)
	if !errors.IsCode(err, errors.ErrCodeColumnOutOfRange) {
		t.Fatalf("expected COLUMN_OUT_OF_RANGE, got %v", err)
	}
	appErr, _ := errors.AsAppError(err)
	if appErr.Details["index"] != 1 || appErr.Details["expr"] != e.String() {
		t.Errorf("unexpected details %v", appErr.Details)
	}
	if err := Bind(Col(-1), 3); err == nil {
		t.Error("negative column index must not bind")
	}
}
