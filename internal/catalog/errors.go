package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both an absent row and a failed single-row read.
	ErrNotFound = errors.New("book not found")
	// ErrWrite is returned when the store rejects an insert, update or delete.
	ErrWrite = errors.New("write rejected by store")
	// ErrQuery is returned by reads that propagate store failures.
	ErrQuery = errors.New("query failed")
	// ErrInvalidInput is returned by the service before any store round trip.
	ErrInvalidInput = errors.New("invalid input")
)

func writeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrWrite, op, err)
}

func queryError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrQuery, op, err)
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of an input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
