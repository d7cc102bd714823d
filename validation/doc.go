// Package validation validates configuration structs using
// go-playground/validator struct tags.
//
//	type SourceConfig struct {
//	    MaxRecordSize string `validate:"required"`
//	}
//	if err := validation.Validate(cfg); err != nil {
//	    // err is an INVALID_CONFIG AppError listing every failing field
//	}
package validation
