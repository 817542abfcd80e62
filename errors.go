package convtime

import (
	"errors"
	"fmt"
)

// ConvError represents a failure at a conversion boundary.
//
// Conversion errors include:
//   - Unknown format: a format name outside the supported set
//   - Invalid field: a calendar/GPS field outside its valid range
//   - Bad payload: a format-tagged payload with the wrong arity
//
// ConvError carries structured fields for diagnostics; callers match on
// Code (or use the Is* predicates) rather than parsing messages.
type ConvError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Format is the format involved, when known.
	Format Format

	// Field names the offending field (for INVALID_FIELD errors).
	Field string

	// Value is the offending value (for INVALID_FIELD errors).
	Value float64
}

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeUnknownFormat indicates a format name outside the supported set.
	ErrCodeUnknownFormat ErrorCode = "UNKNOWN_FORMAT"

	// ErrCodeInvalidField indicates a field value outside its valid range.
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD"

	// ErrCodeBadPayload indicates a payload with the wrong number of values.
	ErrCodeBadPayload ErrorCode = "BAD_PAYLOAD"
)

// Error implements the error interface.
func (e *ConvError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (format=%s, %s=%v)", e.Code, e.Message, e.Format, e.Field, e.Value)
	}
	if e.Format != "" {
		return fmt.Sprintf("%s: %s (format=%s)", e.Code, e.Message, e.Format)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownFormat returns true if the error is an unknown-format error.
// Uses errors.As to handle wrapped errors.
func IsUnknownFormat(err error) bool {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeUnknownFormat
	}
	return false
}

// IsInvalidField returns true if the error is an out-of-range field error.
// Uses errors.As to handle wrapped errors.
func IsInvalidField(err error) bool {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidField
	}
	return false
}

// newUnknownFormatError creates a ConvError for an unrecognized format name.
func newUnknownFormatError(name string) *ConvError {
	return &ConvError{
		Code:    ErrCodeUnknownFormat,
		Message: "unknown time format",
		Format:  Format(name),
	}
}

// newInvalidFieldError creates a ConvError for an out-of-range field.
func newInvalidFieldError(format Format, field string, value float64, bounds string) *ConvError {
	return &ConvError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("%s must be in %s", field, bounds),
		Format:  format,
		Field:   field,
		Value:   value,
	}
}

// newBadPayloadError creates a ConvError for a payload of the wrong arity.
func newBadPayloadError(format Format, want, got int) *ConvError {
	return &ConvError{
		Code:    ErrCodeBadPayload,
		Message: fmt.Sprintf("payload for %q needs %d value(s), got %d", format, want, got),
		Format:  format,
	}
}
