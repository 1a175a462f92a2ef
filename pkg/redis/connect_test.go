package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/redis"
)

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestConnect_Live(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, redis.Healthcheck(client)(context.Background()))
}
