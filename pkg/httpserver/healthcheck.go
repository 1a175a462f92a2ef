package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/firstengineering/website/pkg/logger"
)

// DefaultCheckTimeout bounds each readiness check.
const DefaultCheckTimeout = 2 * time.Second

// HealthCheckHandler returns a handler usable for both liveness and
// readiness probes.
//
//   - Liveness: with no checks the handler returns 200 "ALIVE".
//   - Readiness: every check runs with the request context bounded by
//     DefaultCheckTimeout. All passing yields 200 "READY"; the first failure
//     yields 503 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := runCheck(r.Context(), check); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Error(err),
					logger.Component("healthcheck"),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}

func runCheck(ctx context.Context, check func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
	defer cancel()
	return check(ctx)
}
