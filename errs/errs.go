// Package errs defines the coded errors shared across the service layers.
// Codes classify an error for the transport collaborator, which maps them
// to HTTP status classes; within this module errors are matched by code.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error.
type Code string

const (
	// InvalidArgument signals a request the caller can fix.
	InvalidArgument Code = "invalid_argument"
	// NotFound signals a missing organization, user, task or record.
	NotFound Code = "not_found"
	// PermissionDenied signals that the actor's resolved organization
	// scope excludes the target.
	PermissionDenied Code = "permission_denied"
	// Conflict signals idempotency-key reuse with a different payload.
	Conflict Code = "conflict"
	// Aborted signals a duplicate request whose first submission is
	// still in flight.
	Aborted Code = "aborted"
	// Unavailable signals that a storage collaborator cannot be reached.
	Unavailable Code = "unavailable"
	// Internal signals an unexpected failure.
	Internal Code = "internal"
)

// Error is a coded error.
type Error struct {
	Code    Code
	Message string

	// Underlying is the wrapped cause, if any.
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// New returns a coded error with the given message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap returns a coded error wrapping err.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Underlying: err}
}

// CodeOf extracts the code of err, or Internal for uncoded errors.
// A nil err has no code and returns the empty string.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

// HTTPStatus maps a code to the status the transport boundary should emit.
// Aborted and Conflict stay distinguishable so clients can tell a
// duplicate-in-progress from key reuse with a different payload.
func HTTPStatus(code Code) int {
	switch code {
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case PermissionDenied:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	case Aborted:
		return http.StatusLocked
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
