package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/firstengineering/website/handler"
	"github.com/firstengineering/website/pkg/clientip"
	"github.com/firstengineering/website/pkg/httpserver"
	"github.com/firstengineering/website/pkg/logger"
	"github.com/firstengineering/website/pkg/ratelimiter"
	"github.com/firstengineering/website/pkg/requestid"
)

// MsgTooManyRequests is the body of a rate-limited response.
const MsgTooManyRequests = "Too many requests. Please try again later."

// FormHandlers serves the two public form endpoints.
type FormHandlers interface {
	Contact() http.HandlerFunc
	Application() http.HandlerFunc
}

// RouterOptions configures Router. Forms and Store are required.
type RouterOptions struct {
	Config Config
	Forms  FormHandlers
	Store  ratelimiter.Store
	Logger *slog.Logger

	// Readiness checks for GET /readyz.
	Readiness []func(context.Context) error

	// LimiterOptions are passed to the fixed window limiter.
	LimiterOptions []ratelimiter.Option
}

// Router creates the site router:
//
//	GET  /healthz          liveness
//	GET  /readyz           readiness
//	POST /api/contact      contact form (rate limited)
//	POST /api/application  careers form (rate limited)
//
// Each form has its own fixed window per client identifier. Unknown routes
// and methods get the JSON error envelope.
func Router(opts RouterOptions) (chi.Router, error) {
	if opts.Forms == nil || opts.Store == nil {
		return nil, fmt.Errorf("%w: forms and store are required", ErrInvalidConfig)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	fallback, err := clientip.ParseFallback(opts.Config.RateLimitFallback)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	identify := clientip.Identifier(fallback)

	limiter, err := ratelimiter.NewFixedWindow(opts.Store, ratelimiter.Config{
		MaxRequests: opts.Config.RateLimitMax,
		Window:      opts.Config.RateLimitWindow,
	}, opts.LimiterOptions...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	limit := func(scope string) func(http.Handler) http.Handler {
		return ratelimiter.Middleware(limiter,
			func(r *http.Request) string { return scope + ":" + identify(r) },
			ratelimiter.WithErrorResponder(rateLimitResponder(log, scope, identify)),
		)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, handler.Recoverer(log))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, opts.Readiness...))

	r.Route("/api", func(api chi.Router) {
		api.With(limit("contact")).Post("/contact", opts.Forms.Contact())
		api.With(limit("application")).Post("/application", opts.Forms.Application())
	})

	return r, nil
}

// rateLimitResponder writes the envelope for denied requests. A failing
// store is reported as an internal error.
func rateLimitResponder(log *slog.Logger, scope string, identify func(*http.Request) string) ratelimiter.ErrorResponder {
	return func(w http.ResponseWriter, r *http.Request, result *ratelimiter.Result, err error) {
		if err != nil {
			log.ErrorContext(r.Context(), "rate limit check failed",
				logger.Error(err),
				logger.Component("ratelimiter"),
				logger.ClientID(identify(r)),
				slog.String("scope", scope),
			)
			_ = handler.WriteError(w, http.StatusInternalServerError, handler.InternalErrorMessage)
			return
		}

		log.WarnContext(r.Context(), "rate limit exceeded",
			logger.Component("ratelimiter"),
			logger.ClientID(identify(r)),
			slog.String("scope", scope),
			slog.Time("reset_at", result.ResetAt),
		)
		_ = handler.WriteError(w, http.StatusTooManyRequests, MsgTooManyRequests)
	}
}
