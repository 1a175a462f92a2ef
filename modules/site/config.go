package site

import "time"

// Store backends for rate-limit state.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds the rate-limit settings applied to both form endpoints.
type Config struct {
	RateLimitMax      int           `env:"RATE_LIMIT_MAX" envDefault:"5"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
	RateLimitSweep    time.Duration `env:"RATE_LIMIT_SWEEP" envDefault:"5m"`
	RateLimitFallback string        `env:"RATE_LIMIT_FALLBACK" envDefault:"unknown"` // unknown | remote_addr
	RateLimitStore    string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`     // memory | redis
}
