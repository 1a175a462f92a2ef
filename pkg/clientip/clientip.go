package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ipHeaders are consulted by GetIP in order. X-Forwarded-For is handled
// separately because it may list several hops.
var ipHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP"}

// GetIP resolves the client address for logging. It returns the first valid
// address found in CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For,
// X-Real-IP and finally RemoteAddr, or an empty string.
func GetIP(r *http.Request) string {
	for _, h := range ipHeaders {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	for hop := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := parseIP(hop); ip != "" {
			return ip
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return remoteIP(r)
}

// remoteIP returns the validated TCP peer address of r.
func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return parseIP(host)
	}
	return parseIP(r.RemoteAddr)
}

// parseIP normalizes s, returning an empty string for anything that is not
// an IP address. IPv4-mapped IPv6 addresses are reported as IPv4.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
