// Package validator provides pure predicates and composable rules for checking
// the shape of submitted form fields.
//
// Two layers are exposed. The predicates IsEmail and IsPhone are total
// functions that never panic and report a mismatch as false. On top of them,
// small Rule values pair a Check func with a ValidationError carrying a
// stable Code and a human-readable message. Apply aggregates failures into
// ValidationErrors; ApplyFirst stops at the first one.
//
// # Usage
//
//	if !validator.IsEmail(email) {
//	    return errors.New("invalid email")
//	}
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 100),
//	    validator.ValidEmail("email", email),
//	    validator.OptionalPhone("phone", phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[0].Message is the first failure in rule order
//	}
//
// # Grammar
//
// IsEmail accepts local@domain.tld shaped strings: no whitespace, exactly one
// "@", and at least one "." in the domain part. No DNS or deliverability
// check is performed.
//
// IsPhone accepts an empty string (the field is optional) or a loose
// international number: optional leading "+", optional parenthesised groups,
// digits separated by single spaces, hyphens or dots.
//
// Length rules count runes, not bytes.
package validator
