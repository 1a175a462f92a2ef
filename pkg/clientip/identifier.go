package clientip

import (
	"fmt"
	"net/http"
	"strings"
)

// Fallback selects the identifier used when a request carries neither
// X-Forwarded-For nor X-Real-IP.
type Fallback string

const (
	// FallbackUnknown groups every header-less request under one shared
	// "unknown" identifier.
	FallbackUnknown Fallback = "unknown"
	// FallbackRemoteAddr uses the TCP peer address instead.
	FallbackRemoteAddr Fallback = "remote_addr"
)

// UnknownClient is the identifier for requests without proxy headers
// under FallbackUnknown.
const UnknownClient = "unknown"

// ParseFallback converts a configuration string into a Fallback.
func ParseFallback(s string) (Fallback, error) {
	switch f := Fallback(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FallbackUnknown:
		return FallbackUnknown, nil
	case FallbackRemoteAddr:
		return FallbackRemoteAddr, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFallback, s)
	}
}

// Identifier returns a key function for rate limiting. It uses the first
// X-Forwarded-For entry, then X-Real-IP, then the fallback. Header values
// are taken as sent; they are not parsed as IP addresses.
func Identifier(fallback Fallback) func(r *http.Request) string {
	return func(r *http.Request) string {
		return Identify(r, fallback)
	}
}

// Identify derives the client identifier for r.
func Identify(r *http.Request, fallback Fallback) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if fallback == FallbackRemoteAddr {
		if ip := remoteIP(r); ip != "" {
			return ip
		}
	}

	return UnknownClient
}
