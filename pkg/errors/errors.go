// Package errors provides structured error types for wordgraph.
//
// Every expected failure of a graph operation (an unknown word, an empty
// graph, an input file that cannot be read) is reported as an [*Error] whose
// Message is the exact human-readable text shown to the user. Callers that
// only need the text use [UserMessage]; callers that branch on the kind of
// failure use [Is] or [GetCode].
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - INPUT_*, UNKNOWN_*, EMPTY_*: Expected query outcomes
//   - PERSIST_*, RENDER_*: Collaborator failures that do not invalidate a result
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownWord, "No %s or %s in the graph!", a, b)
//	if errors.Is(err, errors.ErrCodeUnknownWord) {
//	    fmt.Println(errors.UserMessage(err))
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInputUnreadable, origErr, "cannot read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Expected query outcomes
	ErrCodeInputUnreadable Code = "INPUT_UNREADABLE"
	ErrCodeUnknownWord     Code = "UNKNOWN_WORD"
	ErrCodeEmptyGraph      Code = "EMPTY_GRAPH"

	// Collaborator failures
	ErrCodePersistFailed Code = "PERSIST_FAILED"
	ErrCodeRenderFailed  Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRecoverable reports whether err describes a collaborator failure that
// leaves the computed result usable (a failed artifact write or render).
func IsRecoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodePersistFailed, ErrCodeRenderFailed:
		return true
	}
	return false
}
