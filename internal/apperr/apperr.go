// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindCapacityExceeded
	KindInvalidStatus
)

// Error is a classified application error. Fields carries per-field
// validation messages and Data carries contextual payload such as the
// registration that caused a conflict.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Data    any
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so callers can test against the
// sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Status maps the error kind to an HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindBadRequest, KindCapacityExceeded, KindInvalidStatus:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation failed"
	case KindBadRequest:
		return "Bad request"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "Not found"
	case KindConflict:
		return "Conflict"
	case KindCapacityExceeded:
		return "Event is at full capacity"
	case KindInvalidStatus:
		return "Invalid status"
	default:
		return "Internal server error"
	}
}

// Sentinels for errors.Is.
var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrBadRequest       = &Error{Kind: KindBadRequest}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized}
	ErrForbidden        = &Error{Kind: KindForbidden}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded}
	ErrInvalidStatus    = &Error{Kind: KindInvalidStatus}
	ErrInternal         = &Error{Kind: KindInternal}
)

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func Conflict(msg string, data any) *Error {
	return &Error{Kind: KindConflict, Message: msg, Data: data}
}

func CapacityExceeded(msg string) *Error {
	return &Error{Kind: KindCapacityExceeded, Message: msg}
}

func InvalidStatus(msg string) *Error { return &Error{Kind: KindInvalidStatus, Message: msg} }

// Internal wraps an unexpected failure. The public message stays generic.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// As extracts an *Error from err. Unclassified errors become internal.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("Internal server error", err)
}
