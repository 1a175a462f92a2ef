// Package clientip derives client identifiers from HTTP requests.
//
// Two resolutions are provided, for two different jobs:
//
//   - Identify and Identifier produce the rate limiting key. They take the
//     first X-Forwarded-For entry, then X-Real-IP, and otherwise fall back to
//     either the shared "unknown" identifier or the TCP peer address. Header
//     values are used verbatim.
//   - GetIP resolves a validated IP address for logging, also consulting
//     CF-Connecting-IP and DO-Connecting-IP, and ending at RemoteAddr.
//
// Middleware stores the GetIP result in the request context, and
// LoggerExtractor exposes it to the logger as "client_ip".
//
// # Usage
//
//	keyFunc := clientip.Identifier(clientip.FallbackUnknown)
//	r.Use(clientip.Middleware)
//	r.With(ratelimiter.Middleware(limiter, keyFunc)).Post("/api/contact", h)
//
// Neither resolution authenticates the headers. Without a trusted proxy in
// front of the service, clients choose their own identifier.
package clientip
