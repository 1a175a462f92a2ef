package ratelimiter

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// RateLimiter defines the interface for rate limiting implementations.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

const lockStripes = 64

// FixedWindow implements a fixed window rate limiter over a Store.
type FixedWindow struct {
	store  Store
	config Config
	now    func() time.Time
	locks  [lockStripes]sync.Mutex
}

// Option configures a FixedWindow.
type Option func(*FixedWindow)

// WithClock replaces time.Now as the limiter's time source.
func WithClock(now func() time.Time) Option {
	return func(fw *FixedWindow) {
		if now != nil {
			fw.now = now
		}
	}
}

// NewFixedWindow creates a new fixed window rate limiter.
func NewFixedWindow(store Store, config Config, opts ...Option) (*FixedWindow, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	fw := &FixedWindow{
		store:  store,
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(fw)
	}

	return fw, nil
}

// Allow records one request for key and reports whether it fits the window.
// Denied requests are still counted.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContextCancelled, err)
	}

	// Get and Set are separate store calls; serialise them per key.
	mu := &fw.locks[stripe(key)]
	mu.Lock()
	defer mu.Unlock()

	now := fw.now()

	entry, ok, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if !ok || entry.Expired(now) {
		entry = Entry{Count: 1, ResetAt: now.Add(fw.config.Window)}
	} else {
		entry.Count++
	}

	if err := fw.store.Set(ctx, key, entry); err != nil {
		return nil, err
	}

	return &Result{
		Limit:     fw.config.MaxRequests,
		Remaining: fw.config.MaxRequests - entry.Count,
		ResetAt:   entry.ResetAt,
	}, nil
}

// Status returns the current window for key without counting a request.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := fw.now()
	entry, ok, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || entry.Expired(now) {
		return &Result{
			Limit:     fw.config.MaxRequests,
			Remaining: fw.config.MaxRequests,
			ResetAt:   now.Add(fw.config.Window),
		}, nil
	}

	return &Result{
		Limit:     fw.config.MaxRequests,
		Remaining: fw.config.MaxRequests - entry.Count,
		ResetAt:   entry.ResetAt,
	}, nil
}

// Sweep removes expired windows from the store.
func (fw *FixedWindow) Sweep(ctx context.Context) (int, error) {
	return fw.store.Sweep(ctx, fw.now())
}

// Config returns the limiter configuration.
func (fw *FixedWindow) Config() Config {
	return fw.config
}

func stripe(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() % lockStripes
}

func (c Config) validate() error {
	if c.MaxRequests <= 0 {
		return fmt.Errorf("%w: max requests must be positive, got %d", ErrInvalidConfig, c.MaxRequests)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	return nil
}
