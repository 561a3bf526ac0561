// Package errors provides sentinel errors and structured error details for
// the jnew CLI. Every failure of a creation flow is classified under exactly
// one sentinel so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a type name that is not a legal identifier.
	ErrValidation = errors.New("validation error")

	// ErrCollision indicates the target file already exists.
	ErrCollision = errors.New("file already exists")

	// ErrConfig indicates an unknown construct kind, a missing template, or
	// an invalid configuration file.
	ErrConfig = errors.New("configuration error")

	// ErrIO indicates the target file could not be written.
	ErrIO = errors.New("i/o error")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface. The hint is not part of the
// message; callers that want it read it with HintOf.
func (e *DetailError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error for an identifier.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "invalid name",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewCollisionError creates an error for a target file that already exists.
func NewCollisionError(path string) error {
	return &DetailError{
		Type:     "name collision",
		Message:  "a file with this name already exists",
		Location: path,
		Hint:     "choose another name; existing files are never overwritten",
		Cause:    ErrCollision,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message, location, hint string) error {
	return &DetailError{
		Type:     "configuration",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfig,
	}
}

// NewIOError creates an I/O error for path, keeping cause in the chain.
func NewIOError(path string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  cause.Error(),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// HintOf returns the hint of the first DetailError in err's chain, or "".
func HintOf(err error) string {
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Hint
	}
	return ""
}
