// Package errors provides structured error types for wrrc.
//
// Every failure the generator or the CLI can report carries a machine-readable
// [Code] so callers can tell an invalid repeater count apart from an address
// that does not exist, without matching on message text.
//
// # Error Codes
//
//   - INVALID_*: input validation failures
//   - *_OUT_OF_RANGE, *_TOO_LARGE: inputs outside the supported range
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidElementCount, "repeater count must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidElementCount) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidElementCount Code = "INVALID_ELEMENT_COUNT"
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeInvalidFormat       Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig       Code = "INVALID_CONFIG"

	// Range errors
	ErrCodeElementCountTooLarge Code = "ELEMENT_COUNT_TOO_LARGE"
	ErrCodeRankOutOfRange       Code = "RANK_OUT_OF_RANGE"

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
