// Package common provides shared error types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Store errors.
	ErrNotFound = errors.New("transaction not found")

	// Import/export errors.
	ErrCodecUnavailable = errors.New("tabular codec unavailable")
	ErrCodecFailure     = errors.New("malformed tabular payload")
	ErrNothingToImport  = errors.New("no valid rows to import")
)

// ValidationError reports a single field that failed normalization.
// Import paths treat these as local: the offending record is skipped and
// the batch continues.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, value string) error {
	return &ValidationError{Field: field, Value: value}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
