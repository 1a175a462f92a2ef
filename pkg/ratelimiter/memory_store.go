package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps windows in a map guarded by a mutex. A background
// goroutine sweeps expired windows until Close is called.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry

	interval time.Duration
	stop     context.CancelFunc
	done     chan struct{}
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired windows are swept. Zero or a
// negative interval disables the background sweep.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.interval = interval
	}
}

// NewMemoryStore returns a store sweeping every DefaultSweepInterval
// unless configured otherwise.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		entries:  make(map[string]Entry),
		interval: DefaultSweepInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ms.stop = cancel
	if ms.interval > 0 {
		go ms.sweepEvery(ctx)
	} else {
		close(ms.done)
	}
	return ms
}

func (ms *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	ms.mu.RLock()
	e, ok := ms.entries[key]
	ms.mu.RUnlock()
	return e, ok, nil
}

func (ms *MemoryStore) Set(_ context.Context, key string, entry Entry) error {
	ms.mu.Lock()
	ms.entries[key] = entry
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) Sweep(_ context.Context, now time.Time) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	n := len(ms.entries)
	for key, e := range ms.entries {
		if e.Expired(now) {
			delete(ms.entries, key)
		}
	}
	return n - len(ms.entries), nil
}

// Len returns the number of stored windows, expired or not.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.entries)
}

// Close stops the background sweep and waits for it to exit. It may be
// called more than once.
func (ms *MemoryStore) Close() {
	ms.stop()
	<-ms.done
}

func (ms *MemoryStore) sweepEvery(ctx context.Context) {
	defer close(ms.done)

	ticker := time.NewTicker(ms.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			_, _ = ms.Sweep(ctx, now)
		case <-ctx.Done():
			return
		}
	}
}
