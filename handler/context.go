package handler

import (
	"context"
	"net/http"

	"github.com/firstengineering/website/pkg/requestid"
)

// Context is the request scope passed to a HandlerFunc. It behaves as the
// request's context.Context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	RequestID() string
}

// NewContext returns the default Context for a request.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) RequestID() string                   { return requestid.FromContext(c.Context) }
