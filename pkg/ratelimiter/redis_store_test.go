package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/ratelimiter"
)

func redisClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	client := redisClient(t)
	ctx := context.Background()
	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("test:ratelimit:"+t.Name()))

	key := "198.51.100.7"
	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	resetAt := time.Now().Add(2 * time.Second).Truncate(time.Millisecond)
	require.NoError(t, store.Set(ctx, key, ratelimiter.Entry{Count: 2, ResetAt: resetAt}))

	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.Count)
	assert.True(t, resetAt.Equal(got.ResetAt))

	keys, err := client.Keys(ctx, "test:ratelimit:*").Result()
	require.NoError(t, err)
	for _, k := range keys {
		assert.NotContains(t, k, key, "identifier must be hashed")
	}

	removed, err := store.Sweep(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisStore_WithLimiter(t *testing.T) {
	t.Parallel()

	client := redisClient(t)
	ctx := context.Background()
	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("test:ratelimit:"+t.Name()))

	limiter, err := ratelimiter.NewFixedWindow(store, ratelimiter.Config{MaxRequests: 2, Window: time.Second})
	require.NoError(t, err)

	for range 2 {
		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	}
	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
}
