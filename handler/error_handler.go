package handler

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/firstengineering/website/pkg/logger"
	"github.com/firstengineering/website/pkg/requestid"
)

// Helper functions for HTTP status code classification
func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// logError logs the error with request context. The full error chain is
// logged; clients only ever see the classified message.
func logError(log *slog.Logger, r *http.Request, err error, status int) {
	log.LogAttrs(r.Context(), determineLogLevel(status), "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the default error handler: it logs the error and
// writes the `{success: false, error}` envelope.
// Configure this once in main.go and pass to all services.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		status, message := Classify(err)
		logError(log, ctx.Request(), err, status)

		if writeErr := WriteError(ctx.ResponseWriter(), status, message); writeErr != nil {
			log.Error("failed to write error response",
				logger.RequestID(ctx.RequestID()),
				logger.Error(writeErr),
				logger.Event("render_error"),
			)
		}
	}
}

// Recoverer turns panics into a logged 500 with InternalErrorMessage.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.ErrorContext(r.Context(), "panic recovered",
					logger.RequestID(requestid.FromContext(r.Context())),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					logger.Component("recoverer"),
				)
				_ = WriteError(w, http.StatusInternalServerError, InternalErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// NotFound writes a 404 envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	_ = WriteError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed writes a 405 envelope.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	_ = WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
