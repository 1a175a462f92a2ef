package sanitizer

import "strings"

// htmlReplacer performs a single left-to-right pass, which is equivalent to
// escaping "&" before the other characters.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// String trims s, removes literal "<" and ">" and truncates the result to
// maxLength runes. Empty input yields an empty string.
func String(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	return MaxLength(RemoveChars(strings.TrimSpace(s), "<>"), maxLength)
}

// HTML trims s, escapes & < > " ' to entities and truncates the result to
// maxLength runes. Truncation happens after escaping, so the budget applies
// to the escaped text.
func HTML(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	return MaxLength(EscapeHTML(strings.TrimSpace(s)), maxLength)
}

// EscapeHTML escapes & < > " ' using hexadecimal entity for the apostrophe.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// PreventHeaderInjection removes CR, LF and NUL so a value can sit next to
// mail headers without splitting them.
func PreventHeaderInjection(s string) string {
	return RemoveChars(s, "\r\n\x00")
}
