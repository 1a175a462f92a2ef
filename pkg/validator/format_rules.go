package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Applied after all whitespace is removed.
	phoneRegex = regexp.MustCompile(`^\+?\(?[0-9]{1,4}\)?[-\s.]?\(?[0-9]{1,4}\)?[-\s.]?[0-9]{1,9}$`)
)

// IsEmail reports whether s is a local@domain.tld shaped address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone reports whether s is empty or a loosely formatted phone number.
func IsPhone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRegex.MatchString(removeWhitespace(s))
}

func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ValidEmail fails unless IsEmail accepts value.
func ValidEmail(field, value string) Rule {
	return rule(field, "email", "must be a valid email address", func() bool {
		return IsEmail(value)
	})
}

// OptionalPhone passes for an empty value and otherwise requires IsPhone.
func OptionalPhone(field, value string) Rule {
	return rule(field, "phone", "must be a valid phone number", func() bool {
		return IsPhone(value)
	})
}
