package contact

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidSubmission = errors.New("contact: invalid submission")
	ErrMisconfigured     = errors.New("contact: mail configuration error")
	ErrDeliveryFailed    = errors.New("contact: delivery failed")
)

// Client-facing messages.
const (
	MsgInvalidJSON          = "Invalid JSON in request body"
	MsgInvalidForm          = "Invalid form data in request body"
	MsgContactRequired      = "Name, email, and message are required"
	MsgApplicationRequired  = "Name, email, and position are required"
	MsgNameTooLong          = "Name must be less than 100 characters"
	MsgMessageTooLong       = "Message must be less than 5000 characters"
	MsgSubjectTooLong       = "Subject must be less than 200 characters"
	MsgPositionTooLong      = "Position must be less than 100 characters"
	MsgExperienceTooLong    = "Experience must be less than 100 characters"
	MsgInvalidEmail         = "Invalid email format"
	MsgInvalidPhone         = "Invalid phone number format"
	MsgResumeTooLarge       = "Resume must be 10MB or smaller"
	MsgResumeType           = "Resume must be a PDF or Word document"
	MsgDeliveryFailed       = "Failed to send email. Please try again later."
	MsgContactSubmitted     = "Contact form submitted successfully"
	MsgApplicationSubmitted = "Application submitted successfully"
)

// Kind classifies an Error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConfig
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfig:
		return "config"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if k == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrInvalidSubmission
	case KindConfig:
		return ErrMisconfigured
	default:
		return ErrDeliveryFailed
	}
}

// Error is a classified pipeline failure. Message is shown to the client;
// Err is the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

func invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func misconfigured(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: message, Err: cause}
}

func undelivered(cause error) *Error {
	return &Error{Kind: KindDelivery, Message: MsgDeliveryFailed, Err: cause}
}
