package service

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied data that fails a domain rule:
// a missing required field, a wrong type, an invalid enum value or a
// uniqueness violation caught by a pre-check. The message is entity-specific
// and user-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation that targeted an identity which did not
// resolve to a row.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist with ID %v", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a not-found error. Anything that is
// neither validation nor not-found is a storage error and propagates to the
// request boundary unmodified.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
