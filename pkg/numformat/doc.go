// Package numformat describes how a locale writes numbers: which characters
// it uses for the positive and negative signs, on which side of the digits the
// sign goes, how digits are grouped and what separates the fractional part.
//
// The pattern assembler in pkg/numregex consumes a Profile as an explicit,
// read-only value. Nothing in this package reads an ambient "current locale";
// callers choose the profile.
//
// # Sources of profiles
//
//   - Invariant is the en-US layout: "+", "-", sign before the number, ","
//     every 3 digits and "." before decimals.
//   - Resolve and FromTag derive a profile from the CLDR tables shipped with
//     golang.org/x/text by formatting sample values with a message.Printer.
//   - Registry stores custom profiles, optionally loaded from YAML, and falls
//     back to Resolve for names it does not know.
//
// # Supported layouts
//
// Only locales that place the sign immediately before or after the digits,
// and that group digits with one uniform size, are supported. Everything else
// fails fast:
//
//	p, err := numformat.Resolve("en-IN")
//	if errors.Is(err, numformat.ErrUnsupportedGrouping) {
//	    // 12,34,567 style grouping uses two sizes
//	}
//
// # Error Handling
//
//   - ErrUnsupportedLayout   – negative sign is neither before nor after the number.
//   - ErrUnsupportedGrouping – zero, several or non-positive group sizes.
//   - ErrInvalidProfile      – empty or multi-character symbols.
//   - ErrInvalidLocale       – the locale identifier cannot be parsed.
//   - ErrProfileNotFound     – Registry has no profile and CLDR has none either.
package numformat
