package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError describes one failed rule. TranslationKey and
// TranslationValues let callers render Message in another language.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the error returned by Apply.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, err := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

// Is reports ErrValidationFailed as a match, and ErrInvalidFormat when any
// error carries a numeric format translation key.
func (ve ValidationErrors) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrInvalidFormat:
		for _, err := range ve {
			if strings.HasPrefix(err.TranslationKey, "validation.numeric_format") {
				return true
			}
		}
	}
	return false
}

// Has reports whether any error belongs to field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Fields lists the failing fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		if !slices.Contains(fields, err.Field) {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns the failures as ValidationErrors,
// or nil when all rules pass.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
