package ratelimiter

import (
	"context"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

const (
	fieldCount   = "count"
	fieldResetAt = "reset_at"
)

// RedisStore implements Store on Redis hashes. Each window expires on its
// own via PEXPIREAT, so Sweep has nothing to do.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	grace  time.Duration
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the Redis key prefix. Default "ratelimit".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

// WithExpiryGrace keeps keys for d past the window end. Default 1s.
func WithExpiryGrace(d time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		s.grace = d
	}
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ratelimit",
		grace:  time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	vals, err := s.client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return Entry{}, false, errors.Join(ErrStoreUnavailable, err)
	}
	if len(vals) == 0 {
		return Entry{}, false, nil
	}

	count, err := strconv.Atoi(vals[fieldCount])
	if err != nil {
		return Entry{}, false, nil
	}
	resetMs, err := strconv.ParseInt(vals[fieldResetAt], 10, 64)
	if err != nil {
		return Entry{}, false, nil
	}

	return Entry{Count: count, ResetAt: time.UnixMilli(resetMs)}, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry) error {
	k := s.key(key)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, k, fieldCount, entry.Count, fieldResetAt, entry.ResetAt.UnixMilli())
	pipe.PExpireAt(ctx, k, entry.ResetAt.Add(s.grace))
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Sweep is a no-op; Redis expires windows itself.
func (s *RedisStore) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}

// key hashes the identifier so client addresses never reach Redis verbatim.
func (s *RedisStore) key(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return s.prefix + ":" + hex.EncodeToString(sum[:16])
}
