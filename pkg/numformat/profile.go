package numformat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Layout describes where a locale renders the negative sign. The numbering
// follows the NumberNegativePattern convention used by CLDR-derived tables.
type Layout int

const (
	// LayoutParentheses renders negatives as "(n)". Not supported.
	LayoutParentheses Layout = iota
	// LayoutSignBefore renders negatives as "-n".
	LayoutSignBefore
	// LayoutSignBeforeSpace renders negatives as "- n".
	LayoutSignBeforeSpace
	// LayoutSignAfter renders negatives as "n-".
	LayoutSignAfter
	// LayoutSignAfterSpace renders negatives as "n -".
	LayoutSignAfterSpace
)

var layoutNames = map[Layout]string{
	LayoutParentheses:     "parentheses",
	LayoutSignBefore:      "sign-before",
	LayoutSignBeforeSpace: "sign-before-space",
	LayoutSignAfter:       "sign-after",
	LayoutSignAfterSpace:  "sign-after-space",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "layout(" + strconv.Itoa(int(l)) + ")"
}

// ParseLayout accepts either a layout name or its numeric value.
func ParseLayout(s string) (Layout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range layoutNames {
		if name == s {
			return l, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown layout %q", ErrUnsupportedLayout, s)
	}
	return Layout(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	parsed, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Profile is the read-only numeric formatting metadata of a locale.
type Profile struct {
	PositiveSign     string `yaml:"positive_sign"`
	NegativeSign     string `yaml:"negative_sign"`
	NegativeLayout   Layout `yaml:"negative_layout"`
	GroupSeparator   string `yaml:"group_separator"`
	GroupSizes       []int  `yaml:"group_sizes"`
	DecimalSeparator string `yaml:"decimal_separator"`
}

// Invariant matches the en-US defaults.
var Invariant = Profile{
	PositiveSign:     "+",
	NegativeSign:     "-",
	NegativeLayout:   LayoutSignBefore,
	GroupSeparator:   ",",
	GroupSizes:       []int{3},
	DecimalSeparator: ".",
}

// SignBeforeNumber reports whether signs precede the digits.
func (p Profile) SignBeforeNumber() (bool, error) {
	switch p.NegativeLayout {
	case LayoutSignBefore, LayoutSignBeforeSpace:
		return true, nil
	case LayoutSignAfter, LayoutSignAfterSpace:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedLayout, p.NegativeLayout)
	}
}

// GroupSize returns the single uniform group size of the profile.
func (p Profile) GroupSize() (int, error) {
	if len(p.GroupSizes) != 1 {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedGrouping, p.GroupSizes)
	}
	if p.GroupSizes[0] < 1 {
		return 0, fmt.Errorf("%w: group size %d", ErrUnsupportedGrouping, p.GroupSizes[0])
	}
	return p.GroupSizes[0], nil
}

// Validate checks every precondition the pattern assembler relies on.
func (p Profile) Validate() error {
	if _, err := p.SignBeforeNumber(); err != nil {
		return err
	}
	if _, err := p.GroupSize(); err != nil {
		return err
	}
	if utf8.RuneCountInString(p.PositiveSign) != 1 {
		return fmt.Errorf("%w: positive sign %q must be a single character", ErrInvalidProfile, p.PositiveSign)
	}
	if utf8.RuneCountInString(p.NegativeSign) != 1 {
		return fmt.Errorf("%w: negative sign %q must be a single character", ErrInvalidProfile, p.NegativeSign)
	}
	if p.GroupSeparator == "" {
		return fmt.Errorf("%w: empty group separator", ErrInvalidProfile)
	}
	if p.DecimalSeparator == "" {
		return fmt.Errorf("%w: empty decimal separator", ErrInvalidProfile)
	}
	return nil
}

// Key returns a stable identity string suitable for memoization.
func (p Profile) Key() string {
	sizes := make([]string, len(p.GroupSizes))
	for i, s := range p.GroupSizes {
		sizes[i] = strconv.Itoa(s)
	}
	return strings.Join([]string{
		strconv.Quote(p.PositiveSign),
		strconv.Quote(p.NegativeSign),
		strconv.Itoa(int(p.NegativeLayout)),
		strconv.Quote(p.GroupSeparator),
		strings.Join(sizes, "/"),
		strconv.Quote(p.DecimalSeparator),
	}, "|")
}
