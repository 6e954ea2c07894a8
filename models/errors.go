package models

import (
	"errors"

	"go.uber.org/multierr"
)

// ValidationError reports one malformed or missing field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError is a shorthand used by the query parameter parsers.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors flattens err into its field errors. It returns nil when err
// carries no ValidationError at all.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	for _, e := range multierr.Errors(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			out = append(out, ve)
		}
	}
	return out
}

// IsValidationError reports whether err is (or combines) validation failures.
func IsValidationError(err error) bool {
	return len(ValidationErrors(err)) > 0
}
