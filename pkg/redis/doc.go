// Package redis connects to a Redis server for the shared rate-limit store
// and exposes a readiness check for it.
//
// Connect parses a redis:// URL, pings the server and retries according to
// Config before giving up with ErrRedisNotReady. Healthcheck adapts a client
// to the func(context.Context) error shape used by
// httpserver.HealthCheckHandler.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, redis.Healthcheck(client)))
//
// # Errors
//
// Failures are joined with the sentinel errors in errors.go so they can be
// matched with errors.Is.
package redis
