package numregex

import (
	"fmt"

	"github.com/dmitrymomot/numregex/pkg/numformat"
)

// DigitsPattern is the base pattern every build starts from.
const DigitsPattern = `^\d+$`

// Patterns of the presets built against numformat.Invariant.
const (
	LeadingAndTrailingWhiteSpacePattern                               = `^\s*\d+\s*$`
	SixDigitsPattern                                                  = `^\d{6}$`
	OptionalSignOptionalGroupSeparatorTwoRequiredDecimalDigitsPattern = `^[+\-]?\d{1,3}(?:,?\d{3})*\.\d{2}$`
	TwoOptionalDecimalDigitsPattern                                   = `^\d+(?:\.\d{0,2})?$`
)

// Preset option sets. Build them against a profile to get a locale-specific pattern.
var (
	LeadingAndTrailingWhiteSpace = NewOptions(WithWhiteSpace(WhiteSpaceLeadingOrTrailing))
	SixDigits                    = NewOptions(WithDigitCount(6))

	OptionalSignOptionalGroupSeparatorTwoRequiredDecimalDigits = NewOptions(
		WithSign(SignAny),
		WithGrouping(GroupingOptional),
		WithRequiredDecimalDigits(2),
	)

	TwoOptionalDecimalDigits = NewOptions(WithDecimalDigits(2))
)

// Digits matches one or more ASCII digits and nothing else.
var Digits = MustCompile(numformat.Invariant, Options{})

// Preset matchers built against numformat.Invariant.
var (
	LeadingAndTrailingWhiteSpaceMatcher = MustCompile(numformat.Invariant, LeadingAndTrailingWhiteSpace)
	SixDigitsMatcher                    = MustCompile(numformat.Invariant, SixDigits)

	OptionalSignOptionalGroupSeparatorTwoRequiredDecimalDigitsMatcher = MustCompile(
		numformat.Invariant,
		OptionalSignOptionalGroupSeparatorTwoRequiredDecimalDigits,
	)

	TwoOptionalDecimalDigitsMatcher = MustCompile(numformat.Invariant, TwoOptionalDecimalDigits)
)

// Build assembles the anchored pattern for o under profile p. No partial
// pattern is returned on error.
func Build(p numformat.Profile, o Options) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	a := newAssembly()
	a.applyDigitCount(o.DigitCount)
	if err := a.applySign(o.Sign, p); err != nil {
		return "", err
	}
	if err := a.applyGrouping(o.Grouping, p); err != nil {
		return "", err
	}
	a.applyDecimals(o.DecimalDigits, o.DecimalRequired, p)
	a.applyWhiteSpace(o.WhiteSpace)

	return a.String(), nil
}

// Compile builds the pattern and compiles it into a whole-string Matcher.
func Compile(p numformat.Profile, o Options) (*Matcher, error) {
	pattern, err := Build(p, o)
	if err != nil {
		return nil, err
	}
	return newMatcher(pattern)
}

// MustCompile is like Compile but panics on error. Intended for package-level
// variables with known-good inputs.
func MustCompile(p numformat.Profile, o Options) *Matcher {
	m, err := Compile(p, o)
	if err != nil {
		panic(fmt.Sprintf("numregex: compile %+v: %v", o, err))
	}
	return m
}
