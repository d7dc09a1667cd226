package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an Error and decides its HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is returned by handlers and rendered by the response package.
// Message is safe to show to clients, Err is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	return Status(e.Kind)
}

func Status(k Kind) int {
	switch k {
	case KindBadRequest:
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

// New builds an Error. message is shown to clients; err is only logged.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// BadRequest is a 400.
func BadRequest(message string, err error) *Error {
	return New(KindBadRequest, message, err)
}

// Unauthorized is a 401.
func Unauthorized(message string, err error) *Error {
	return New(KindUnauthorized, message, err)
}

// Forbidden is a 403.
func Forbidden(message string, err error) *Error {
	return New(KindForbidden, message, err)
}

// NotFound is a 404.
func NotFound(message string, err error) *Error {
	return New(KindNotFound, message, err)
}

// Conflict is a 409.
func Conflict(message string, err error) *Error {
	return New(KindConflict, message, err)
}

// Internal is a 500 with a generic message; err never reaches the client.
func Internal(err error) *Error {
	return New(KindInternal, "Something went wrong on our end", err)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
