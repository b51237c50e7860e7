package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrIntegrity marks a failed proof: a forged or stale OAuth state, or a
	// verification phrase that is missing from the claimed profile.
	ErrIntegrity = errors.New("integrity check failed")
	// ErrUpstream marks an external service that was unreachable or answered
	// with a non-success status.
	ErrUpstream = errors.New("upstream service failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UserError pairs a sentinel with a message that is safe to show to the end user.
// errors.Is matches the wrapped sentinel.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Kind }

// NewUserError creates a UserError of the given kind.
func NewUserError(kind error, message string) *UserError {
	return &UserError{Kind: kind, Message: message}
}

// UserMessage returns the user-facing message carried by err, if any.
func UserMessage(err error) (string, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message, true
	}
	return "", false
}
