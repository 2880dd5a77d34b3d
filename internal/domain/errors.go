package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinels. Callers test for them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// ErrInvalidInput is the one message a rejected project form gets. It names
// no field.
var ErrInvalidInput = fmt.Errorf("invalid input, please try again: %w", ErrValidation)

// MsgRequired is the field message for a missing mandatory value.
const MsgRequired = "is required"

// ValidationError names each rejected field with its message. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// FieldError is shorthand for a ValidationError on one field.
func FieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order so the text is stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		sep := "; "
		if i == 0 {
			sep = ": "
		}
		b.WriteString(sep + field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
