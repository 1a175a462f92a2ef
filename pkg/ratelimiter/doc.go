// Package ratelimiter provides fixed-window rate limiting with pluggable
// storage and HTTP middleware.
//
// A window opens on the first request from an identifier and lasts
// Config.Window. Every request inside the window increments the counter;
// once the counter exceeds Config.MaxRequests the request is denied, and
// keeps being denied until the window expires. The next request after expiry
// opens a fresh window. Expiry is checked lazily on every request, so the
// periodic sweep is only a memory bound, never a correctness requirement.
//
// # Basic Usage
//
//	store := ratelimiter.NewMemoryStore() // sweeps expired windows every 5 minutes
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewFixedWindow(store, ratelimiter.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, "203.0.113.7")
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		// retry after result.RetryAfter()
//	}
//
// # Storage
//
// Store is a three-method contract (Get, Set, Sweep). MemoryStore keeps
// windows in a map for single-instance deployments. RedisStore keeps them in
// Redis hashes with a TTL, so several instances share one view of each
// identifier. Identifiers are hashed with BLAKE2b before they become Redis
// keys, so raw client addresses are never written to the shared store.
//
// Both stores are approximate and non-durable in different ways: MemoryStore
// loses every counter on restart, and neither store runs the read-modify-write
// as a single atomic operation across processes. FixedWindow serialises
// requests for the same identifier inside one process; concurrent requests
// hitting different instances may overshoot the limit by the number of racing
// requests.
//
// # HTTP Middleware
//
//	mw := ratelimiter.Middleware(limiter, clientip.Identifier(clientip.FallbackUnknown),
//		ratelimiter.WithErrorResponder(func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result, err error) {
//			// write a custom body
//		}),
//	)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on denial.
//
// # Error Types
//
//	ErrInvalidConfig     - MaxRequests or Window is not positive
//	ErrKeyRequired       - empty identifier
//	ErrStoreUnavailable  - storage backend failed
//	ErrContextCancelled  - context was done before the check ran
package ratelimiter
