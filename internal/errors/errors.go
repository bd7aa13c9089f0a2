package errors

import (
	"errors"
	"fmt"
)

// Error code constants returned over MCP and mapped to CLI exit codes
const (
	CodeNoteNotFound   = "NOTE_NOT_FOUND"
	CodeTitleRequired  = "TITLE_REQUIRED"
	CodeInvalidParams  = "INVALID_PARAMS"
	CodeInvalidPattern = "INVALID_PATTERN"
	CodeStoreFailed    = "STORE_FAILED"
	CodeInvalidConfig  = "INVALID_CONFIG"
)

// Error represents a notesmcp error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new notesmcp error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new notesmcp error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a notesmcp error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var notesErr *Error
	if errors.As(err, &notesErr) {
		return notesErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Convenience constructors for each error code

// NoteNotFound creates a NOTE_NOT_FOUND error.
func NoteNotFound(id string) *Error {
	return New(CodeNoteNotFound, fmt.Sprintf("note %q not found", id))
}

// TitleRequired creates a TITLE_REQUIRED error.
func TitleRequired() *Error {
	return New(CodeTitleRequired, "title is required")
}

// InvalidParams creates an INVALID_PARAMS error.
func InvalidParams(message string) *Error {
	return New(CodeInvalidParams, message)
}

// InvalidPattern creates an INVALID_PATTERN error wrapping the regexp error.
func InvalidPattern(pattern string, err error) *Error {
	return Wrap(CodeInvalidPattern, fmt.Sprintf("invalid search pattern %q", pattern), err)
}

// StoreFailed creates a STORE_FAILED error wrapping the underlying cause.
func StoreFailed(err error) *Error {
	return Wrap(CodeStoreFailed, "failed to persist note store", err)
}

// InvalidConfig creates an INVALID_CONFIG error.
func InvalidConfig(message string) *Error {
	return New(CodeInvalidConfig, message)
}
