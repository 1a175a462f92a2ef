package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: connection URL is empty")
	ErrFailedToParseRedisConnString = errors.New("redis: invalid connection URL")
	ErrRedisNotReady                = errors.New("redis: not reachable after retries")
	ErrHealthcheckFailed            = errors.New("redis: ping failed")
)
