// Package stylerr provides structured error types for the plotguide module.
//
// Error codes give callers a machine-readable handle on the small set of
// failures this module can produce, all of which originate from configuration
// values: unknown rendering-configuration keys, values of the wrong kind, and
// malformed style profiles. The probe deliberately produces no errors at all.
//
// # Usage
//
//	err := stylerr.New(stylerr.ErrCodeUnknownKey, "unknown key %q", key)
//	if stylerr.Is(err, stylerr.ErrCodeUnknownKey) {
//	    // reject the configuration
//	}
package stylerr

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for configuration failures.
const (
	// ErrCodeUnknownKey: a key not present in the rendering-configuration registry.
	ErrCodeUnknownKey Code = "UNKNOWN_KEY"

	// ErrCodeInvalidValue: a value of the wrong kind or outside the allowed enum.
	ErrCodeInvalidValue Code = "INVALID_VALUE"

	// ErrCodeInvalidProfile: a profile file that parsed but violates profile rules.
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"

	// ErrCodeProfileNotFound: a profile file that could not be read.
	ErrCodeProfileNotFound Code = "PROFILE_NOT_FOUND"

	// ErrCodeInternal: unexpected internal errors.
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
