package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Evaluation errors
const (
	// ErrCodeColumnOutOfRange indicates a column index outside the row's arity.
	ErrCodeColumnOutOfRange ErrorCode = "COLUMN_OUT_OF_RANGE"
	// ErrCodeUnresolvedOperand indicates operand kinds that do not fit the operator.
	ErrCodeUnresolvedOperand ErrorCode = "UNRESOLVED_OPERAND"
	// ErrCodeDivisionByZero indicates an integer division with a zero divisor.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"
	// ErrCodeUnsupportedExpression indicates an expression node the evaluator does not know.
	ErrCodeUnsupportedExpression ErrorCode = "UNSUPPORTED_EXPRESSION"
)

// Source errors
const (
	// ErrCodeSourceUnavailable indicates a record source that could not be opened.
	ErrCodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	// ErrCodeRecordReadFailed indicates a record that could not be read from an open source.
	ErrCodeRecordReadFailed ErrorCode = "RECORD_READ_FAILED"
	// ErrCodeInvalidRecord indicates a record that could not be parsed into a row.
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
)

// Setup and internal errors
const (
	// ErrCodeInvalidConfig indicates configuration that failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
