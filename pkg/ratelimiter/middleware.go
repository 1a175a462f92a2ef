package ratelimiter

import (
	"net/http"
	"strconv"
)

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ErrorResponder writes the response for a denied or failed check.
// result is nil when err is non-nil.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, result *Result, err error)

type middlewareConfig struct {
	responder ErrorResponder
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithErrorResponder replaces the default plain-text 429/500 responses.
func WithErrorResponder(fn ErrorResponder) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.responder = fn
		}
	}
}

func defaultResponder(w http.ResponseWriter, _ *http.Request, _ *Result, err error) {
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}

// Middleware creates an HTTP middleware for rate limiting.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{responder: defaultResponder}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), keyFunc(r))
			if err != nil {
				cfg.responder(w, r, nil, err)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retryAfter := int(result.RetryAfter().Seconds())
				if retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}

				cfg.responder(w, r, result, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
