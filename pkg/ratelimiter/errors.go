package ratelimiter

import "errors"

var (
	ErrInvalidConfig    = errors.New("ratelimiter: invalid config")
	ErrKeyRequired      = errors.New("ratelimiter: empty client key")
	ErrContextCancelled = errors.New("ratelimiter: context done before check")
	ErrStoreUnavailable = errors.New("ratelimiter: store unavailable")
)
