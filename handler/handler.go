package handler

import "net/http"

// HandlerFunc handles a request already decoded into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to the client. A render error goes to the
// ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes a request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a bind, handler or render error.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to
// WithDecorators is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders    []Bind
	onError    ErrorHandler
	decorators []Decorator[R]
}

// WithBinder adds a binder. Binders run in the order given and stop at the
// first error.
func WithBinder[R any](b Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if b != nil {
			c.binders = append(c.binders, b)
		}
	}
}

// WithErrorHandler replaces the default error handler, which writes the
// error envelope without logging.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.onError = h
		}
	}
}

// WithDecorators wraps the handler with ds.
func WithDecorators[R any](ds ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, ds...)
	}
}

func writeClassified(ctx Context, err error) {
	status, message := Classify(err)
	_ = WriteError(ctx.ResponseWriter(), status, message)
}

// Wrap adapts h to net/http:
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[ContactRequest](binder.JSON()),
//		handler.WithErrorHandler[ContactRequest](handler.NewErrorHandler(log)),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{onError: writeClassified}
	for _, opt := range opts {
		opt(cfg)
	}
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		h = cfg.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.onError(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.onError(ctx, err)
		}
	}
}
