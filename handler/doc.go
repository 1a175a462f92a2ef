// Package handler provides type-safe HTTP request handling with a uniform
// JSON response envelope.
//
// # Core Concepts
//
// A HandlerFunc receives a Context and a request value already bound by a
// binder, and returns a Response:
//
//	type ContactRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
//
//	func submit(ctx handler.Context, req ContactRequest) handler.Response {
//		id, err := svc.Submit(ctx, req)
//		if err != nil {
//			return handler.FromError(err)
//		}
//		return handler.Success(id, "Contact form submitted successfully")
//	}
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[ContactRequest](binder.JSON()),
//	))
//
// # Envelope
//
// Every response body is an Envelope:
//
//	{"success": true, "message": "...", "data": ...}
//	{"success": false, "error": "..."}
//
// # Errors
//
// HTTPError carries a status code and a client-safe message, optionally
// wrapping the underlying cause. Classify finds an HTTPError anywhere in an
// error chain; any other error becomes a 500 with "Internal server error", so
// internal details never reach the client. NewErrorHandler logs the full
// error and writes the envelope. Recoverer does the same for panics.
package handler
