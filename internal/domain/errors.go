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
)

// Source and sink errors. Adapters wrap these with the offending path.
var (
	ErrNotDSLFile  = errors.New("not a DSL file")
	ErrUnreadable  = errors.New("could not read DSL file")
	ErrEmptyFile   = errors.New("DSL file is empty")
	ErrUndecodable = errors.New("could not decode DSL line")
	ErrSerialize   = errors.New("could not serialize entries")
	ErrWriteFile   = errors.New("could not write output file")
	ErrOutputTaken = errors.New("output file already claimed by another input")
	ErrReadFile    = errors.New("could not read output file")
	ErrDecode      = errors.New("could not decode entries")
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
