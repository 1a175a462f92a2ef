package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates a string to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// NormalizeUnicode converts s to Unicode normalization form C, so visually
// identical input composed differently counts the same against length limits.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveChars removes all occurrences of the specified characters from a string.
func RemoveChars(s string, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// RemoveControlChars removes control characters, keeping newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine collapses line breaks and runs of whitespace into single spaces.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
