package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/firstengineering/website/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("redis down") }

	tests := []struct {
		name       string
		checks     []func(context.Context) error
		wantStatus int
		wantBody   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []func(context.Context) error{ok, ok}, http.StatusOK, "READY"},
		{"not ready", []func(context.Context) error{ok, fail}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestHealthCheckHandler_CheckDeadline(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	check := func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}

	rec := httptest.NewRecorder()
	httpserver.HealthCheckHandler(nil, check).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.WithinDuration(t, time.Now().Add(httpserver.DefaultCheckTimeout), deadline, time.Second)
}
