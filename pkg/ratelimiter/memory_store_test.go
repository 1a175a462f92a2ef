package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/ratelimiter"
)

func TestMemoryStore_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	want := ratelimiter.Entry{Count: 3, ResetAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.Set(ctx, "k", want))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	now := time.Now()
	require.NoError(t, store.Set(ctx, "expired", ratelimiter.Entry{Count: 1, ResetAt: now.Add(-time.Second)}))
	require.NoError(t, store.Set(ctx, "boundary", ratelimiter.Entry{Count: 1, ResetAt: now}))
	require.NoError(t, store.Set(ctx, "active", ratelimiter.Entry{Count: 1, ResetAt: now.Add(time.Minute)}))

	removed, err := store.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, store.Len())

	_, ok, _ := store.Get(ctx, "expired")
	assert.False(t, ok)
}

func TestMemoryStore_BackgroundCleanup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(10 * time.Millisecond))
	defer store.Close()

	require.NoError(t, store.Set(ctx, "k", ratelimiter.Entry{Count: 1, ResetAt: time.Now().Add(-time.Second)}))

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_CloseIdempotent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}

func TestMemoryStore_CloseConcurrent(t *testing.T) {
	t.Parallel()

	for _, interval := range []time.Duration{0, time.Millisecond} {
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(interval))

		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Close()
			}()
		}
		wg.Wait()
	}
}
