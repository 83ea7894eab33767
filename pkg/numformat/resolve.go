package numformat

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Resolve parses a BCP 47 locale identifier and derives its profile.
func Resolve(locale string) (Profile, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Profile{}, fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, locale, err)
	}
	return FromTag(tag)
}

// FromTag derives a profile from the CLDR data bundled with golang.org/x/text.
// The symbols are read back from formatted sample values, so the result
// reflects exactly what a message.Printer for the tag would render.
func FromTag(tag language.Tag) (Profile, error) {
	p := message.NewPrinter(tag)

	groupSep, sizes, err := grouping(stripMarks(p.Sprint(number.Decimal(1234567890))))
	if err != nil {
		return Profile{}, fmt.Errorf("locale %s: %w", tag, err)
	}

	decimalSep := separators(stripMarks(p.Sprint(number.Decimal(1.5, number.Scale(1)))))
	if len(decimalSep) != 1 {
		return Profile{}, fmt.Errorf("%w: locale %s: no decimal separator", ErrInvalidProfile, tag)
	}

	layout, negative, err := negativeLayout(stripMarks(p.Sprint(number.Decimal(-1))))
	if err != nil {
		return Profile{}, fmt.Errorf("locale %s: %w", tag, err)
	}

	positive := "+"
	if sign := strings.TrimFunc(stripMarks(p.Sprintf("%+d", 1)), isDigitOrSpace); sign != "" {
		positive = sign
	}

	return Profile{
		PositiveSign:     positive,
		NegativeSign:     negative,
		NegativeLayout:   layout,
		GroupSeparator:   groupSep,
		GroupSizes:       sizes,
		DecimalSeparator: decimalSep[0],
	}, nil
}

// grouping reads the separator and group sizes from a formatted integer.
// Sizes are reported primary first, as in "1,23,45,678" -> [3 2].
func grouping(formatted string) (string, []int, error) {
	runs := digitRuns(formatted)
	seps := separators(formatted)
	if len(runs) < 2 || len(seps) == 0 {
		return "", nil, fmt.Errorf("%w: locale does not group digits", ErrUnsupportedGrouping)
	}
	for _, s := range seps[1:] {
		if s != seps[0] {
			return "", nil, fmt.Errorf("%w: mixed separators %q", ErrUnsupportedGrouping, seps)
		}
	}

	primary := runs[len(runs)-1]
	sizes := []int{primary}
	for _, r := range runs[1 : len(runs)-1] {
		if r != primary {
			sizes = append(sizes, r)
			break
		}
	}
	if len(sizes) > 1 {
		return "", nil, fmt.Errorf("%w: %v", ErrUnsupportedGrouping, sizes)
	}
	return seps[0], sizes, nil
}

func negativeLayout(formatted string) (Layout, string, error) {
	if strings.HasPrefix(formatted, "(") && strings.HasSuffix(formatted, ")") {
		return LayoutParentheses, "", fmt.Errorf("%w: %q", ErrUnsupportedLayout, formatted)
	}
	runes := []rune(formatted)
	if len(runes) < 2 {
		return 0, "", fmt.Errorf("%w: %q", ErrUnsupportedLayout, formatted)
	}

	var (
		layout Layout
		sign   string
	)
	switch {
	case unicode.IsDigit(runes[len(runes)-1]):
		sign = strings.TrimRightFunc(formatted, unicode.IsDigit)
		layout = LayoutSignBefore
		if strings.TrimRightFunc(sign, unicode.IsSpace) != sign {
			layout = LayoutSignBeforeSpace
		}
	case unicode.IsDigit(runes[0]):
		sign = strings.TrimLeftFunc(formatted, unicode.IsDigit)
		layout = LayoutSignAfter
		if strings.TrimLeftFunc(sign, unicode.IsSpace) != sign {
			layout = LayoutSignAfterSpace
		}
	default:
		return 0, "", fmt.Errorf("%w: %q", ErrUnsupportedLayout, formatted)
	}

	sign = strings.TrimSpace(sign)
	if sign == "" {
		return 0, "", fmt.Errorf("%w: no sign in %q", ErrUnsupportedLayout, formatted)
	}
	return layout, sign, nil
}

func digitRuns(s string) []int {
	var (
		runs []int
		n    int
	)
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
			continue
		}
		if n > 0 {
			runs = append(runs, n)
			n = 0
		}
	}
	if n > 0 {
		runs = append(runs, n)
	}
	return runs
}

// separators returns the non-digit runs found between digits.
func separators(s string) []string {
	var (
		seps    []string
		current strings.Builder
		seen    bool
	)
	for _, r := range s {
		if unicode.IsDigit(r) {
			if seen && current.Len() > 0 {
				seps = append(seps, current.String())
			}
			current.Reset()
			seen = true
			continue
		}
		if seen {
			current.WriteRune(r)
		}
	}
	return seps
}

// stripMarks drops bidi and other format characters that CLDR places around
// signs in right-to-left locales.
func stripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}

func isDigitOrSpace(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsSpace(r)
}
