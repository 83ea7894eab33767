// Package validator provides declarative validation rules for numeric strings
// built on top of numregex patterns.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error, so several field problems travel in a single return.
//
// # Rules
//
//   - NumericFormat validates against an already compiled *numregex.Matcher.
//   - NumericFormatFor builds the matcher from a profile and options; when the
//     pattern cannot be built the rule always fails and carries the build error.
//   - Digits accepts ASCII digits only.
//   - ExactDigits accepts exactly n ASCII digits.
//
// # Usage
//
//	m := numregex.MustCompile(profile, opts)
//	err := validator.Apply(
//	    validator.NumericFormat("amount", amount, m),
//	    validator.ExactDigits("zip", zip, 5),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Has("amount"), translation keys
//	}
//
// Rules hold no global state and are safe to build from multiple goroutines.
package validator
