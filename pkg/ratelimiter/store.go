package ratelimiter

import (
	"context"
	"time"
)

// Store persists fixed windows keyed by client identifier.
type Store interface {
	// Get returns the entry for key. ok is false when no entry exists.
	// Expired entries may still be returned; callers check Entry.Expired.
	Get(ctx context.Context, key string) (entry Entry, ok bool, err error)

	// Set replaces the entry for key.
	Set(ctx context.Context, key string, entry Entry) error

	// Sweep removes every entry whose window expired before now and
	// returns how many were removed.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
