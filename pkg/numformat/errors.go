package numformat

import "errors"

var (
	// ErrUnsupportedLayout is returned when a locale places the negative sign
	// anywhere other than immediately before or immediately after the number.
	ErrUnsupportedLayout = errors.New("unsupported negative number layout")

	// ErrUnsupportedGrouping is returned when a locale does not declare exactly
	// one positive group size.
	ErrUnsupportedGrouping = errors.New("unsupported number group sizes")

	// ErrInvalidProfile is returned when a profile carries empty or
	// multi-character symbols.
	ErrInvalidProfile = errors.New("invalid numeric profile")

	// ErrInvalidLocale is returned when a locale identifier cannot be parsed.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrProfileNotFound is returned by Registry.Lookup when neither a custom
	// profile nor CLDR data is available for the name.
	ErrProfileNotFound = errors.New("numeric profile not found")
)
