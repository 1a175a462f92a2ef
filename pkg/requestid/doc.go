// Package requestid tags every request with an identifier.
//
// Middleware reuses a well-formed X-Request-ID header sent by the proxy in
// front of the site and generates a time-ordered UUID otherwise. The id is
// echoed back in the response header and stored in the request context so
// log lines and error envelopes for one submission can be correlated:
//
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
