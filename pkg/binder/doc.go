// Package binder binds HTTP request bodies to Go structs.
//
// Two binders are provided, both with the signature expected by
// handler.WithBinder:
//
//   - JSON decodes a size-limited JSON body. It does not insist on a
//     Content-Type and ignores unknown fields. Failures wrap
//     ErrFailedToParseJSON.
//   - Form binds application/x-www-form-urlencoded and multipart/form-data
//     bodies using `form` tags for values and `file` tags for uploads.
//     Failures wrap ErrInvalidForm, ErrMissingContentType or
//     ErrUnsupportedMediaType.
//
// # Usage
//
//	type ContactRequest struct {
//		Name    string `json:"name"`
//		Email   string `json:"email"`
//		Message string `json:"message"`
//	}
//
//	type ApplicationRequest struct {
//		Name   string                `form:"name"`
//		Resume *multipart.FileHeader `file:"resume"`
//	}
//
// Binders never sanitize values; that is the caller's job.
package binder
