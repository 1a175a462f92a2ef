package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxSize int64
}

// WithMaxJSONSize overrides DefaultMaxJSONSize.
func WithMaxJSONSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// JSON creates a JSON binder function.
//
// The Content-Type header is not checked. Unknown fields are ignored. Any read, size or syntax failure, including a value of
// the wrong JSON type for a field, wraps ErrFailedToParseJSON.
//
// Example:
//
//	http.HandleFunc("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[ContactRequest](binder.JSON()),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, cfg.maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		return nil
	}
}
