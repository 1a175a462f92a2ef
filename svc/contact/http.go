package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/firstengineering/website/handler"
	"github.com/firstengineering/website/pkg/binder"
)

// Submitter is the part of Service used by Handlers.
type Submitter interface {
	Submit(ctx context.Context, p Payload) (string, error)
	Apply(ctx context.Context, p ApplicationPayload) (string, error)
}

// Handlers exposes a Submitter over HTTP using the JSON envelope.
type Handlers struct {
	svc        Submitter
	onError    handler.ErrorHandler
	jsonBinder handler.Bind
	formBinder handler.Bind
}

// NewHandlers creates HTTP handlers for svc. Errors are logged through log.
func NewHandlers(svc Submitter, log *slog.Logger) *Handlers {
	base := handler.NewErrorHandler(log)
	return &Handlers{
		svc: svc,
		onError: func(ctx handler.Context, err error) {
			base(ctx, toHTTPError(err))
		},
		jsonBinder: binder.JSON(),
		formBinder: binder.Form(),
	}
}

// Contact handles POST /api/contact.
func (h *Handlers) Contact() http.HandlerFunc {
	return handler.Wrap(h.submit,
		handler.WithBinder[Payload](h.jsonBinder),
		handler.WithErrorHandler[Payload](h.onError),
	)
}

// Application handles POST /api/application.
func (h *Handlers) Application() http.HandlerFunc {
	return handler.Wrap(h.apply,
		handler.WithBinder[ApplicationPayload](h.formBinder),
		handler.WithErrorHandler[ApplicationPayload](h.onError),
	)
}

func (h *Handlers) submit(ctx handler.Context, p Payload) handler.Response {
	id, err := h.svc.Submit(ctx, p)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.Success(id, MsgContactSubmitted)
}

func (h *Handlers) apply(ctx handler.Context, p ApplicationPayload) handler.Response {
	id, err := h.svc.Apply(ctx, p)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.Success(id, MsgApplicationSubmitted)
}

// toHTTPError attaches the client-facing status and message to err.
// Unrecognised errors pass through and become a generic 500.
func toHTTPError(err error) error {
	var ce *Error
	switch {
	case errors.As(err, &ce):
		return handler.NewHTTPError(ce.Kind.Status(), ce.Message).Wrap(err)
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return handler.NewHTTPError(http.StatusBadRequest, MsgInvalidJSON).Wrap(err)
	case errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		return handler.NewHTTPError(http.StatusBadRequest, MsgInvalidForm).Wrap(err)
	default:
		return err
	}
}
