package apperr

import (
	"errors"
	"net/http"
)

// Kind is the closed set of application failure categories.
type Kind int

const (
	KindUnclassified Kind = iota
	KindNotFound
	KindBadRequest
	KindValidation
)

// Canonical client-facing messages.
const (
	MsgNotFound   = "not found"
	MsgBadRequest = "bad request"
)

// Error is a typed application failure carrying the HTTP-facing
// status kind and message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// NotFound is a missing-entity failure.
func NotFound() *Error {
	return New(KindNotFound, MsgNotFound)
}

// BadRequest is a malformed-input or failed-reference failure.
func BadRequest() *Error {
	return New(KindBadRequest, MsgBadRequest)
}

// Validation is a rejected query parameter with a field-specific message.
func Validation(msg string) *Error {
	return New(KindValidation, msg)
}

// KindOf returns the kind of err, or KindUnclassified for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnclassified
}
