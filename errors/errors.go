package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates a new AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// --- Common Error Constructors ---

// ColumnOutOfRange creates an error for a column index outside [0, arity).
func ColumnOutOfRange(index, arity int) *AppError {
	return &AppError{
		Code:    ErrCodeColumnOutOfRange,
		Message: fmt.Sprintf("column $%d out of range for row of arity %d", index, arity),
		Details: map[string]any{"index": index, "arity": arity},
	}
}

// UnresolvedOperand creates an error for operands whose kinds do not fit op.
// It means the expression reached the evaluator without a prior type check.
func UnresolvedOperand(op string, left, right string) *AppError {
	return &AppError{
		Code:    ErrCodeUnresolvedOperand,
		Message: fmt.Sprintf("operands of %s not resolved: %s, %s", op, left, right),
		Details: map[string]any{"operator": op, "left": left, "right": right},
	}
}

// DivisionByZero creates an error for an integer division by zero.
func DivisionByZero() *AppError {
	return &AppError{Code: ErrCodeDivisionByZero, Message: "integer division by zero"}
}

// UnsupportedExpression creates an error for an expression node the evaluator cannot handle.
func UnsupportedExpression(node string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedExpression,
		Message: fmt.Sprintf("expression %s is not supported", node),
		Details: map[string]any{"node": node},
	}
}

// SourceUnavailable creates an error for a record source that cannot be opened.
func SourceUnavailable(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeSourceUnavailable,
		Message: fmt.Sprintf("cannot open record source %q", path),
		Details: map[string]any{"path": path},
		Cause:   cause,
	}
}

// RecordReadFailed creates an error for a record that could not be read.
func RecordReadFailed(path string, record int, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeRecordReadFailed,
		Message: fmt.Sprintf("failed reading record %d of %q", record, path),
		Details: map[string]any{"path": path, "record": record},
		Cause:   cause,
	}
}

// InvalidRecord creates an error for a record that cannot be turned into a row.
func InvalidRecord(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidRecord, Message: fmt.Sprintf("invalid record: %s", reason)}
}

// InvalidConfig creates an error for configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// Internal creates an error for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
