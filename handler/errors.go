package handler

import (
	"errors"
	"net/http"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// InternalErrorMessage is the client-facing message for unclassified failures.
const InternalErrorMessage = "Internal server error"

// HTTPError carries a status code and a client-safe message.
// Err, when set, is the underlying cause and is only logged.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

// NewHTTPError creates an HTTPError without an underlying cause.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return e.Message
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// Wrap returns a copy of e with cause attached.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.Err = cause
	return e
}
