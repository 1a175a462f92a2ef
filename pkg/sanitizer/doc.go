// Package sanitizer neutralises free-text form input before it is interpolated
// into an HTML email body or used next to mail headers.
//
// Sanitizers never reject input. They trim, strip or escape, and finally
// truncate to a caller-supplied rune budget:
//
//   - String removes literal "<" and ">" for plain-text contexts.
//   - HTML escapes the five HTML-significant characters (& < > " ') to
//     entities, "&" first so inserted entities are not escaped again.
//
// Smaller helpers cover single concerns:
//
//	replyTo := sanitizer.TrimToLower("  Jane@Example.COM ") // "jane@example.com"
//	subject := sanitizer.String(sanitizer.SingleLine(raw), 200)
//
// All functions are pure and safe for concurrent use.
package sanitizer
