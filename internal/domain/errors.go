package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCode covers every failed verification-code check: missing record,
// wrong code and expired window all look the same to the caller.
var ErrInvalidCode = errors.New("invalid or expired verification code")

// ValidationError reports a missing required request field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
