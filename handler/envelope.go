package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DefaultSuccessMessage is used when Success is given an empty message.
const DefaultSuccessMessage = "Success"

// Envelope is the JSON body of every API response.
// Successful responses carry Message and optional Data; failures carry Error.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// envelopeResponse implements Response for envelope rendering
type envelopeResponse struct {
	status int
	body   Envelope
}

func (e envelopeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, e.status, e.body)
}

// ResponseOption configures an envelope response.
type ResponseOption func(*envelopeResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) ResponseOption {
	return func(r *envelopeResponse) {
		r.status = status
	}
}

// Success creates a 200 response `{success: true, message, data}`.
func Success(data any, message string, opts ...ResponseOption) Response {
	if message == "" {
		message = DefaultSuccessMessage
	}
	r := &envelopeResponse{
		status: http.StatusOK,
		body:   Envelope{Success: true, Message: message, Data: data},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Error creates a `{success: false, error}` response with the given status.
func Error(status int, message string) Response {
	return &envelopeResponse{
		status: status,
		body:   Envelope{Success: false, Error: message},
	}
}

// failure defers err to the ErrorHandler configured on Wrap.
type failure struct {
	err error
}

func (f failure) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Fail returns a Response that writes nothing and hands err to the
// ErrorHandler, so the error is logged and classified in one place.
func Fail(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return failure{err: err}
}

// FromError converts err into an error response. An HTTPError anywhere in
// the chain supplies status and message; anything else becomes a 500 with
// InternalErrorMessage.
func FromError(err error) Response {
	status, message := Classify(err)
	return Error(status, message)
}

// Classify returns the status code and client-facing message for err.
func Classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, msg
	}
	return http.StatusInternalServerError, InternalErrorMessage
}

// WriteJSON writes body as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// WriteError writes a `{success: false, error}` body with the given status.
func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, Envelope{Success: false, Error: message})
}
