package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

const maxLength = 128

var pattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware stores the request id in the context and the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = New()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// New returns a fresh request id.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether id may be propagated as is. Ids from clients end up
// in logs, so anything beyond a short token of letters, digits, dashes and
// underscores is replaced.
func Valid(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}
	return pattern.MatchString(id)
}
