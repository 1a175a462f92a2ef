package ratelimiter

import "time"

const (
	// DefaultMaxRequests is the number of requests allowed per window.
	DefaultMaxRequests = 5
	// DefaultWindow is the window length.
	DefaultWindow = 15 * time.Minute
	// DefaultSweepInterval is how often MemoryStore removes expired windows.
	DefaultSweepInterval = 5 * time.Minute
)

// Config defines the fixed window configuration.
type Config struct {
	MaxRequests int           // Requests allowed inside one window
	Window      time.Duration // Window length, measured from the first request
}

// DefaultConfig returns 5 requests per 15 minutes.
func DefaultConfig() Config {
	return Config{
		MaxRequests: DefaultMaxRequests,
		Window:      DefaultWindow,
	}
}

// Entry is the stored state of one identifier's window.
type Entry struct {
	Count   int       // Requests seen in the current window
	ResetAt time.Time // Absolute time the window expires
}

// Expired reports whether the window has passed at now.
func (e Entry) Expired(now time.Time) bool {
	return e.ResetAt.Before(now)
}

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Requests allowed per window
	Remaining int       // Requests left in the window; negative once the limit is exceeded
	ResetAt   time.Time // When the window expires
}

// Allowed returns whether the request is allowed based on remaining requests.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}
