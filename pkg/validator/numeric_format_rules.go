package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/numregex/pkg/numformat"
	"github.com/dmitrymomot/numregex/pkg/numregex"
)

// NumericFormat validates value against a compiled numeric-string pattern.
// Blank values fail.
func NumericFormat(field, value string, m *numregex.Matcher) Rule {
	return Rule{
		Check: func() bool {
			if m == nil || strings.TrimSpace(value) == "" {
				return false
			}
			return m.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number in the expected format",
			TranslationKey: "validation.numeric_format",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": matcherPattern(m),
			},
		},
	}
}

// NumericFormatFor builds the pattern for profile and options and validates
// value against it. A pattern that cannot be built yields a rule that always
// fails and carries the build error as its message.
func NumericFormatFor(field, value string, p numformat.Profile, o numregex.Options) Rule {
	m, err := numregex.Compile(p, o)
	if err != nil {
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:          field,
				Message:        err.Error(),
				TranslationKey: "validation.numeric_format_unavailable",
				TranslationValues: map[string]any{
					"field":   field,
					"options": o.String(),
				},
			},
		}
	}
	return NumericFormat(field, value, m)
}

// Digits validates that value consists of ASCII digits only.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return numregex.Digits.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ExactDigits validates that value has exactly n ASCII digits.
func ExactDigits(field, value string, n int) Rule {
	m, err := numregex.Compile(numformat.Invariant, numregex.NewOptions(numregex.WithDigitCount(n)))
	return Rule{
		Check: func() bool {
			return err == nil && n > 0 && m.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have exactly %d digits", n),
			TranslationKey: "validation.exact_digits",
			TranslationValues: map[string]any{
				"field":  field,
				"digits": n,
			},
		},
	}
}

func matcherPattern(m *numregex.Matcher) string {
	if m == nil {
		return ""
	}
	return m.String()
}
