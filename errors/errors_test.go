package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Message != "boom" {
		t.Errorf("expected message 'boom', got %q", err.Message)
	}
}

func TestAppError_Newf(t *testing.T) {
	err := Newf(ErrCodeInvalidRecord, "field %d is %s", 2, "bad")
	if err.Message != "field 2 is bad" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_ColumnOutOfRange(t *testing.T) {
	err := ColumnOutOfRange(5, 2)
	if err.Code != ErrCodeColumnOutOfRange {
		t.Errorf("expected COLUMN_OUT_OF_RANGE, got %s", err.Code)
	}
	if err.Details["index"] != 5 || err.Details["arity"] != 2 {
		t.Errorf("unexpected details %v", err.Details)
	}
	if !strings.Contains(err.Error(), "$5") {
		t.Errorf("expected column reference in message, got %q", err.Error())
	}
}

func TestAppError_UnresolvedOperand(t *testing.T) {
	err := UnresolvedOperand(">", "BOOL", "INT")
	if err.Code != ErrCodeUnresolvedOperand {
		t.Errorf("expected UNRESOLVED_OPERAND, got %s", err.Code)
	}
	if err.Details["operator"] != ">" {
		t.Errorf("expected operator detail, got %v", err.Details["operator"])
	}
}

func TestAppError_SourceUnavailable_Cause(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := SourceUnavailable("/tmp/x", cause)
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if !strings.Contains(err.Error(), "/tmp/x") || !strings.Contains(err.Error(), "no such file") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	root := fmt.Errorf("root cause")
	err := Internal(nil).WithCause(root)
	if !stderrors.Is(err, root) {
		t.Error("errors.Is should find the root cause")
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := InvalidRecord("short").WithDetails(map[string]any{"line": 3})
	err.WithDetails(map[string]any{"sep": ","})
	if err.Details["line"] != 3 || err.Details["sep"] != "," {
		t.Errorf("expected merged details, got %v", err.Details)
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := DivisionByZero()
	err.WithDetail("expr", "($0 / 0)")
	if err.Details["expr"] != "($0 / 0)" {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := New(ErrCodeDivisionByZero, "integer division by zero")
	if err.Error() != "DIVISION_BY_ZERO: integer division by zero" {
		t.Errorf("unexpected format %q", err.Error())
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"ColumnOutOfRange", ColumnOutOfRange(1, 0), ErrCodeColumnOutOfRange},
		{"UnresolvedOperand", UnresolvedOperand("+", "INT", "BOOL"), ErrCodeUnresolvedOperand},
		{"DivisionByZero", DivisionByZero(), ErrCodeDivisionByZero},
		{"UnsupportedExpression", UnsupportedExpression("<nil>"), ErrCodeUnsupportedExpression},
		{"SourceUnavailable", SourceUnavailable("a", nil), ErrCodeSourceUnavailable},
		{"RecordReadFailed", RecordReadFailed("a", 1, nil), ErrCodeRecordReadFailed},
		{"InvalidRecord", InvalidRecord("x"), ErrCodeInvalidRecord},
		{"InvalidConfig", InvalidConfig("x"), ErrCodeInvalidConfig},
		{"Internal", Internal(nil), ErrCodeInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected %s, got %s", tc.code, tc.err.Code)
			}
		})
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("stage 2: %w", DivisionByZero())
	if CodeOf(wrapped) != ErrCodeDivisionByZero {
		t.Errorf("expected DIVISION_BY_ZERO, got %q", CodeOf(wrapped))
	}
	if !IsCode(wrapped, ErrCodeDivisionByZero) {
		t.Error("IsCode should match wrapped AppError")
	}
	if IsCode(nil, ErrCodeDivisionByZero) {
		t.Error("IsCode(nil) should be false")
	}
	if CodeOf(fmt.Errorf("plain")) != "" {
		t.Error("plain errors have no code")
	}
}

func TestAppError_AsAppError(t *testing.T) {
	original := InvalidConfig("bad")
	wrapped := fmt.Errorf("load: %w", original)
	got, ok := AsAppError(wrapped)
	if !ok || got != original {
		t.Fatalf("expected to unwrap original AppError, got %v", got)
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error should not be an AppError")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = Internal(nil)
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
