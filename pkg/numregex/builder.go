package numregex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/numregex/pkg/numformat"
)

// slot is a position in the assembled pattern. Stages write to slots instead
// of searching the pattern text for anchors.
type slot int

const (
	slotLeadingSpace slot = iota
	slotSignBefore
	slotDigits
	slotSignAfter
	slotDecimal
	slotTrailingSpace
	slotCount
)

const (
	digitsToken     = `\d`
	whiteSpaceToken = `\s*`
)

// assembly holds one fragment per slot; empty slots contribute nothing.
type assembly [slotCount]string

func newAssembly() *assembly {
	a := new(assembly)
	a[slotDigits] = digitsToken + "+"
	return a
}

func (a *assembly) String() string {
	var b strings.Builder
	b.WriteByte('^')
	for _, fragment := range a {
		b.WriteString(fragment)
	}
	b.WriteByte('$')
	return b.String()
}

// applyDigitCount is stage 1.
func (a *assembly) applyDigitCount(n int) {
	if n > 0 {
		a[slotDigits] = fmt.Sprintf(`%s{%d}`, digitsToken, n)
	}
}

// applySign is stage 2.
func (a *assembly) applySign(s Sign, p numformat.Profile) error {
	before, err := p.SignBeforeNumber()
	if err != nil {
		return err
	}

	var (
		members  []string
		optional bool
	)
	switch s {
	case SignNone:
		return nil
	case SignPositive:
		members = []string{p.PositiveSign}
	case SignNegative:
		members = []string{p.NegativeSign}
	case SignPositiveOrNone:
		members, optional = []string{p.PositiveSign}, true
	case SignNegativeOrNone:
		members, optional = []string{p.NegativeSign}, true
	case SignPositiveOrNegative:
		members = []string{p.PositiveSign, p.NegativeSign}
	case SignAny:
		members, optional = []string{p.PositiveSign, p.NegativeSign}, true
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOption, s)
	}

	class := charClass(members...)
	if optional {
		class += "?"
	}
	if before {
		a[slotSignBefore] = class
	} else {
		a[slotSignAfter] = class
	}
	return nil
}

// applyGrouping is stage 3. It replaces the digit body, so an exact digit
// count from stage 1 does not survive grouping.
func (a *assembly) applyGrouping(g Grouping, p numformat.Profile) error {
	size, err := p.GroupSize()
	if err != nil {
		return err
	}

	var sep string
	switch g {
	case GroupingNone:
		return nil
	case GroupingRequired:
		sep = literal(p.GroupSeparator)
	case GroupingOptional:
		sep = optionalLiteral(p.GroupSeparator)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOption, g)
	}

	a[slotDigits] = fmt.Sprintf(`%[1]s{1,%[2]d}(?:%[3]s%[1]s{%[2]d})*`, digitsToken, size, sep)
	return nil
}

// applyDecimals is stage 4.
func (a *assembly) applyDecimals(n int, required bool, p numformat.Profile) {
	if n == 0 {
		return
	}
	sep := literal(p.DecimalSeparator)
	if required {
		a[slotDecimal] = fmt.Sprintf(`%s%s{%d}`, sep, digitsToken, n)
		return
	}
	a[slotDecimal] = fmt.Sprintf(`(?:%s%s{0,%d})?`, sep, digitsToken, n)
}

// applyWhiteSpace is stage 5.
func (a *assembly) applyWhiteSpace(w WhiteSpace) {
	if w.leading() {
		a[slotLeadingSpace] = whiteSpaceToken
	}
	if w.trailing() {
		a[slotTrailingSpace] = whiteSpaceToken
	}
}

func literal(s string) string {
	return regexp.QuoteMeta(s)
}

func optionalLiteral(s string) string {
	if utf8.RuneCountInString(s) == 1 {
		return literal(s) + "?"
	}
	return "(?:" + literal(s) + ")?"
}

// charClass builds a bracket expression whose members are taken literally.
func charClass(members ...string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, m := range members {
		for _, r := range m {
			switch r {
			case '\\', ']', '[', '^', '-':
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(']')
	return b.String()
}
