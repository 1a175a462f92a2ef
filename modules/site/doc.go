// Package site composes the public HTTP surface of the website: request id
// and client ip middleware, panic recovery, health probes and the rate
// limited form endpoints served by svc/contact.
package site
