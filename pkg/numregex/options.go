package numregex

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRepeat is the largest repetition count RE2 accepts in a{n}.
const maxRepeat = 1000

// Sign controls which mathematical signs a number may carry.
type Sign uint8

const (
	// SignNone forbids any sign.
	SignNone Sign = iota
	// SignPositive requires the positive sign.
	SignPositive
	// SignNegative requires the negative sign.
	SignNegative
	// SignPositiveOrNone allows an optional positive sign.
	SignPositiveOrNone
	// SignNegativeOrNone allows an optional negative sign.
	SignNegativeOrNone
	// SignPositiveOrNegative requires either sign.
	SignPositiveOrNegative
	// SignAny allows either sign or none.
	SignAny
)

var signNames = [...]string{
	SignNone:               "none",
	SignPositive:           "positive",
	SignNegative:           "negative",
	SignPositiveOrNone:     "positive-or-none",
	SignNegativeOrNone:     "negative-or-none",
	SignPositiveOrNegative: "positive-or-negative",
	SignAny:                "any",
}

// IsValid reports whether s is one of the named sign options.
func (s Sign) IsValid() bool { return int(s) < len(signNames) }

func (s Sign) String() string {
	if s.IsValid() {
		return signNames[s]
	}
	return "sign(" + strconv.Itoa(int(s)) + ")"
}

// ParseSign converts a name such as "positive-or-none" into a Sign.
func ParseSign(name string) (Sign, error) {
	i, err := parseName(name, signNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: sign: %w", ErrInvalidOption, err)
	}
	return Sign(i), nil
}

// Grouping controls digit group separators.
type Grouping uint8

const (
	// GroupingNone forbids group separators.
	GroupingNone Grouping = iota
	// GroupingRequired requires a separator at every group boundary.
	GroupingRequired
	// GroupingOptional permits a separator at each boundary independently.
	GroupingOptional
)

var groupingNames = [...]string{
	GroupingNone:     "none",
	GroupingRequired: "required",
	GroupingOptional: "optional",
}

// IsValid reports whether g is one of the named grouping options.
func (g Grouping) IsValid() bool { return int(g) < len(groupingNames) }

func (g Grouping) String() string {
	if g.IsValid() {
		return groupingNames[g]
	}
	return "grouping(" + strconv.Itoa(int(g)) + ")"
}

// ParseGrouping converts a name such as "optional" into a Grouping.
func ParseGrouping(name string) (Grouping, error) {
	i, err := parseName(name, groupingNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: grouping: %w", ErrInvalidOption, err)
	}
	return Grouping(i), nil
}

// WhiteSpace controls whitespace around the number.
type WhiteSpace uint8

const (
	// WhiteSpaceNone forbids surrounding whitespace.
	WhiteSpaceNone WhiteSpace = iota
	// WhiteSpaceLeading allows whitespace before the number.
	WhiteSpaceLeading
	// WhiteSpaceTrailing allows whitespace after the number.
	WhiteSpaceTrailing
	// WhiteSpaceLeadingOrTrailing allows whitespace on both sides.
	WhiteSpaceLeadingOrTrailing
)

var whiteSpaceNames = [...]string{
	WhiteSpaceNone:              "none",
	WhiteSpaceLeading:           "leading",
	WhiteSpaceTrailing:          "trailing",
	WhiteSpaceLeadingOrTrailing: "leading-or-trailing",
}

// IsValid reports whether w is one of the named whitespace options.
func (w WhiteSpace) IsValid() bool { return int(w) < len(whiteSpaceNames) }

func (w WhiteSpace) String() string {
	if w.IsValid() {
		return whiteSpaceNames[w]
	}
	return "whitespace(" + strconv.Itoa(int(w)) + ")"
}

// ParseWhiteSpace converts a name such as "leading" into a WhiteSpace.
func ParseWhiteSpace(name string) (WhiteSpace, error) {
	i, err := parseName(name, whiteSpaceNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: whitespace: %w", ErrInvalidOption, err)
	}
	return WhiteSpace(i), nil
}

func (w WhiteSpace) leading() bool {
	return w == WhiteSpaceLeading || w == WhiteSpaceLeadingOrTrailing
}

func (w WhiteSpace) trailing() bool {
	return w == WhiteSpaceTrailing || w == WhiteSpaceLeadingOrTrailing
}

func parseName(name string, names []string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q, want one of %s", name, strings.Join(names, ", "))
}

// Options is the full set of formatting rules for one pattern. The zero value
// accepts one or more plain digits.
type Options struct {
	// DigitCount is the exact number of integer digits; 0 means one or more.
	DigitCount int
	Sign       Sign
	Grouping   Grouping
	// DecimalDigits is the maximum (or, with DecimalRequired, exact) number of
	// fractional digits; 0 disables the decimal part.
	DecimalDigits   int
	DecimalRequired bool
	WhiteSpace      WhiteSpace
}

// Validate rejects values outside their enumerations and counts RE2 cannot express.
func (o Options) Validate() error {
	switch {
	case o.DigitCount < 0 || o.DigitCount > maxRepeat:
		return fmt.Errorf("%w: digit count %d not in [0, %d]", ErrInvalidOption, o.DigitCount, maxRepeat)
	case o.DecimalDigits < 0 || o.DecimalDigits > maxRepeat:
		return fmt.Errorf("%w: decimal digits %d not in [0, %d]", ErrInvalidOption, o.DecimalDigits, maxRepeat)
	case !o.Sign.IsValid():
		return fmt.Errorf("%w: %s", ErrInvalidOption, o.Sign)
	case !o.Grouping.IsValid():
		return fmt.Errorf("%w: %s", ErrInvalidOption, o.Grouping)
	case !o.WhiteSpace.IsValid():
		return fmt.Errorf("%w: %s", ErrInvalidOption, o.WhiteSpace)
	}
	return nil
}

// Option mutates Options.
type Option func(*Options)

// NewOptions applies opts to the zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// With returns a copy of o with opts applied.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithDigitCount(n int) Option {
	return func(o *Options) { o.DigitCount = n }
}

func WithSign(s Sign) Option {
	return func(o *Options) { o.Sign = s }
}

func WithGrouping(g Grouping) Option {
	return func(o *Options) { o.Grouping = g }
}

// WithDecimalDigits allows up to n fractional digits after an optional separator.
func WithDecimalDigits(n int) Option {
	return func(o *Options) {
		o.DecimalDigits = n
		o.DecimalRequired = false
	}
}

// WithRequiredDecimalDigits requires the separator followed by exactly n digits.
func WithRequiredDecimalDigits(n int) Option {
	return func(o *Options) {
		o.DecimalDigits = n
		o.DecimalRequired = true
	}
}

func WithWhiteSpace(w WhiteSpace) Option {
	return func(o *Options) { o.WhiteSpace = w }
}

func (o Options) String() string {
	return fmt.Sprintf("digits=%d sign=%s grouping=%s decimals=%d decimal_required=%t whitespace=%s",
		o.DigitCount, o.Sign, o.Grouping, o.DecimalDigits, o.DecimalRequired, o.WhiteSpace)
}
