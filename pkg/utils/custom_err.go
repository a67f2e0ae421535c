package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrEntryNotFound       = errors.New("trip entry not found")
	ErrTripConflict        = errors.New("trip was modified by another request")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrSeedForbidden       = errors.New("seeding not allowed in production")
	ErrDatabaseError       = errors.New("database error")
)

// FieldError names one offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed input: missing fields, bad enum
// values, out-of-range positions.
type ValidationError struct {
	Message string
	Fields  []FieldError
	Err     error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Message != "" {
			return e.Message
		}
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	msg := e.Message
	if msg == "" {
		msg = "validation failed"
	}
	return msg + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// IndexOutOfRange reports a positional trip mutation outside [0, len).
func IndexOutOfRange(what string, index, length int) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("invalid %s index %d: index out of range [0, %d)", what, index, length),
		Err:     ErrIndexOutOfRange,
	}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// DatabaseError keeps the storage cause in the chain for logging while
// matching ErrDatabaseError.
func DatabaseError(err error) error {
	return fmt.Errorf("%w: %v", ErrDatabaseError, err)
}
