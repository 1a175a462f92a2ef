package requestid_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/requestid"
)

// serve runs the middleware and returns the id seen by the handler and the
// id echoed in the response.
func serve(t *testing.T, incoming string) (seen, echoed string) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return seen, rec.Header().Get(requestid.Header)
}

func TestMiddleware_KeepsValidIDs(t *testing.T) {
	t.Parallel()

	for _, id := range []string{
		"abc123",
		"edge_proxy-7",
		"550e8400-e29b-41d4-a716-446655440000",
		strings.Repeat("a", 128),
	} {
		seen, echoed := serve(t, id)
		assert.Equal(t, id, seen)
		assert.Equal(t, id, echoed)
	}
}

func TestMiddleware_ReplacesInvalidIDs(t *testing.T) {
	t.Parallel()

	for _, id := range []string{
		"",
		"has space",
		"path/like",
		`back\slash`,
		"<script>alert(1)</script>",
		"line\nbreak",
		strings.Repeat("a", 129),
	} {
		seen, echoed := serve(t, id)
		assert.NotEqual(t, id, seen, "incoming %q", id)
		assert.Equal(t, seen, echoed)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, requestid.Valid("a-b_c"))
	assert.False(t, requestid.Valid(""))
	assert.False(t, requestid.Valid("a.b"))
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "req-1", requestid.FromContext(requestid.WithContext(context.Background(), "req-1")))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestNew(t *testing.T) {
	t.Parallel()

	id := requestid.New()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.True(t, requestid.Valid(id))
	assert.NotEqual(t, id, requestid.New())
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "abc-123"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "abc-123", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
