package site

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/firstengineering/website/pkg/ratelimiter"
)

// NewStore builds the rate-limit store selected by cfg.RateLimitStore.
// client is only used, and then required, for the redis store. The returned
// close function releases the store's background work.
func NewStore(cfg Config, client goredis.UniversalClient) (ratelimiter.Store, func(), error) {
	switch cfg.RateLimitStore {
	case StoreMemory, "":
		ms := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(cfg.RateLimitSweep))
		return ms, ms.Close, nil
	case StoreRedis:
		if client == nil {
			return nil, nil, fmt.Errorf("%w: redis store requires a redis client", ErrInvalidConfig)
		}
		return ratelimiter.NewRedisStore(client), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown rate limit store %q", ErrInvalidConfig, cfg.RateLimitStore)
	}
}
