// Package contact implements the website's inbound submission pipeline: the
// contact form and the careers application form.
//
// Service.Submit and Service.Apply validate and sanitize a submission,
// resolve the configured sender and recipient addresses, render the
// notification bodies and hand the result to an injected email.Sender.
// Failures are returned as *Error values whose Kind selects the HTTP status
// and whose Message is safe to show to the client.
//
// Handlers exposes both operations as http.HandlerFunc values built with
// handler.Wrap and the JSON and multipart binders.
//
// Usage:
//
//	svc := contact.NewService(cfg, sender, contact.WithLogger(log))
//	h := contact.NewHandlers(svc, log)
//
//	r.Post("/api/contact", h.Contact())
//	r.Post("/api/application", h.Application())
package contact
