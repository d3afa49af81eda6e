// Package errors provides structured error types for tilestitch.
//
// Domain packages return plain sentinel errors. The pipeline translates
// them into an [*Error] carrying a machine-readable [Code], which the CLI
// prints and the HTTP server maps to a status.
//
// # Error Codes
//
//   - INVALID_*: input that cannot be parsed or options that make no sense
//   - ADJACENCY_INCONSISTENT, NO_ORIENTATION: tile sets that do not form a
//     unique square picture
//   - MOTIF_NOT_FOUND: a solved picture without the motif
//   - INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidTile, parseErr, "reading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidTile   Code = "INVALID_TILE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidMotif  Code = "INVALID_MOTIF"

	// Puzzle errors
	ErrCodeAdjacency     Code = "ADJACENCY_INCONSISTENT"
	ErrCodeNoOrientation Code = "NO_ORIENTATION"
	ErrCodeMotifNotFound Code = "MOTIF_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
	ErrCodeCanceled Code = "CANCELED"
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
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Classify wraps err with the code of the first rule whose sentinel it
// matches. Errors that already carry a code are returned unchanged;
// unmatched errors become ErrCodeInternal.
func Classify(err error, rules []Rule, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if GetCode(err) != "" {
		return err
	}
	for _, r := range rules {
		for _, target := range r.Targets {
			if errors.Is(err, target) {
				return Wrap(r.Code, err, format, args...)
			}
		}
	}
	return Wrap(ErrCodeInternal, err, format, args...)
}

// Rule maps a set of sentinel errors to a code.
type Rule struct {
	Code    Code
	Targets []error
}
