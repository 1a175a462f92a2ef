package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
// Larger parts spill to temporary files.
const DefaultMaxMemory = 10 << 20 // 10 MB

// DefaultMaxFormSize caps the whole request body for Form (32MB).
const DefaultMaxFormSize = 32 << 20 // 32 MB

// FormOption configures the Form binder.
type FormOption func(*formConfig)

type formConfig struct {
	maxMemory int64
	maxSize   int64
}

// WithMaxMemory overrides DefaultMaxMemory.
func WithMaxMemory(n int64) FormOption {
	return func(c *formConfig) {
		if n > 0 {
			c.maxMemory = n
		}
	}
}

// WithMaxFormSize overrides DefaultMaxFormSize.
func WithMaxFormSize(n int64) FormOption {
	return func(c *formConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// Form creates a unified binder for both form data and file uploads.
// It handles application/x-www-form-urlencoded and multipart/form-data content types.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//   - `file:"name"` - binds to uploaded file "name"
//
// Form fields may be strings, booleans, integers or floats, pointers to
// them, or slices for repeated keys. File fields are *multipart.FileHeader
// or []*multipart.FileHeader.
//
// Example:
//
//	type ApplicationRequest struct {
//		Name     string                `form:"name"`
//		Position string                `form:"position"`
//		Resume   *multipart.FileHeader `file:"resume"` // Optional file
//	}
//
//	http.HandleFunc("/api/application", handler.Wrap(apply,
//		handler.WithBinder[ApplicationRequest](binder.Form()),
//	))
//
// Uploaded filenames are reduced to their base name. Temporary files created
// for large parts are removed by net/http once the handler returns.
func Form(opts ...FormOption) func(r *http.Request, v any) error {
	cfg := formConfig{maxMemory: DefaultMaxMemory, maxSize: DefaultMaxFormSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return fmt.Errorf("%w: expected a form submission", ErrMissingContentType)
		}
		mediaType, params, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, cfg.maxSize)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			return bindValues(v, r.PostForm, nil)

		case "multipart/form-data":
			if !validBoundary(params["boundary"]) {
				return fmt.Errorf("%w: missing or invalid boundary", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(cfg.maxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			return bindValues(v, r.MultipartForm.Value, r.MultipartForm.File)

		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
	}
}

// validBoundary checks the boundary against RFC 2046: 1-70 characters
// from a restricted set, not ending in a space.
func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
