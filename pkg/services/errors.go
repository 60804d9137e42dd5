// Package services holds the persistence-facing service layer and the
// error taxonomy shared by the HTTP surface.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited is returned when a vendor or provider budget is exhausted
	ErrRateLimited = errors.New("rate limited")

	// ErrUpstream is returned when an external dependency fails
	ErrUpstream = errors.New("upstream failure")

	// ErrDeadline is returned when a query exceeds its deadline
	ErrDeadline = errors.New("deadline exceeded")

	// ErrUnavailable is returned when the service cannot accept work,
	// for example when the database pool is saturated
	ErrUnavailable = errors.New("service unavailable")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
