package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError describes one failed rule. Code is stable for programs,
// Message is meant for people and may be replaced with Rule.WithMessage.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors lists failures in rule order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.Field + ": " + e.Message
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// Fields returns the failing field names without duplicates.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Has reports whether field failed any rule.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// First returns the first failure, or the zero value.
func (ve ValidationErrors) First() ValidationError {
	if len(ve) == 0 {
		return ValidationError{}
	}
	return ve[0]
}

// Rule is a deferred check and the error it reports.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of r reporting msg.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

func rule(field, code, message string, check func() bool) Rule {
	return Rule{Check: check, Error: ValidationError{Field: field, Code: code, Message: message}}
}

// Apply runs every rule and returns all failures as ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplyFirst runs rules in order and stops at the first failure.
func ApplyFirst(rules ...Rule) error {
	for _, r := range rules {
		if !r.Check() {
			return ValidationErrors{r.Error}
		}
	}
	return nil
}

// ExtractValidationErrors returns the ValidationErrors in err's chain.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err's chain holds ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
