// Package errors defines the typed errors reported by configuration loading
// and backend lookup.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ParseError is a configuration file that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a configuration field or flag with an invalid value.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ErrUnknownBackend is wrapped by BackendError when a backend id is not registered.
var ErrUnknownBackend = stdErrors.New("unknown backend")

// BackendError reports a render backend that cannot be used.
type BackendError struct {
	Backend string
	Message string
	Err     error
}

// NewBackendError constructs a BackendError for the given backend id.
func NewBackendError(backend string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &BackendError{Backend: backend, Message: message, Err: err}
}

func (e *BackendError) Error() string {
	if e == nil {
		return ""
	}
	if e.Backend != "" {
		return fmt.Sprintf("backend error [%s]: %s", e.Backend, e.Message)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *BackendError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
