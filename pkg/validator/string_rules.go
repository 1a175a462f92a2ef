package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Required fails for a value that is empty after trimming whitespace.
func Required(field, value string) Rule {
	return rule(field, "required", "is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MaxLen fails when value holds more than max runes.
func MaxLen(field, value string, max int) Rule {
	return rule(field, "max_length", "must be at most "+strconv.Itoa(max)+" characters long", func() bool {
		return utf8.RuneCountInString(value) <= max
	})
}

// MinLen fails when value holds fewer than min runes.
func MinLen(field, value string, min int) Rule {
	return rule(field, "min_length", "must be at least "+strconv.Itoa(min)+" characters long", func() bool {
		return utf8.RuneCountInString(value) >= min
	})
}
