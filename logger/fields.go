package logger

import (
	"time"

	"github.com/kbukum/flare/errors"
)

// Standard field keys.
const (
	FieldComponent = "component"
	FieldSourceID  = "source_id"
	FieldPath      = "path"
	FieldRecords   = "records"
	FieldStage     = "stage"
	FieldCode      = "code"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys and
// a trailing key without a value are ignored.
//
//	logger.Info("done", logger.Fields("records", 3, "path", p))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a stage that failed. AppErrors also carry
// their code.
func ErrorFields(stage string, err error) map[string]any {
	m := map[string]any{
		FieldStage: stage,
		FieldError: err.Error(),
	}
	if code := errors.CodeOf(err); code != "" {
		m[FieldCode] = string(code)
	}
	return m
}

// DurationFields creates fields for a timed stage.
func DurationFields(stage string, d time.Duration) map[string]any {
	return map[string]any{
		FieldStage:    stage,
		FieldDuration: d.Milliseconds(),
	}
}
