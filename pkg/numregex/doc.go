// Package numregex generates regular expressions that recognize numbers
// written under a given set of formatting rules and a locale's numeric
// profile.
//
// A pattern is assembled from independent dimensions: the number of integer
// digits, the mathematical sign, digit grouping, decimal digits and
// surrounding whitespace. Each dimension writes into its own slot of the
// pattern (leading whitespace, sign before, digit body, sign after, decimal
// part, trailing whitespace) and the slots are joined once between "^" and
// "$". Locale symbols are always escaped, so a "." decimal separator or a "-"
// sign never acts as regex syntax.
//
// # Usage
//
//	profile, err := numformat.Resolve("de-DE")
//	if err != nil {
//	    return err
//	}
//	m, err := numregex.Compile(profile, numregex.NewOptions(
//	    numregex.WithSign(numregex.SignAny),
//	    numregex.WithGrouping(numregex.GroupingOptional),
//	    numregex.WithRequiredDecimalDigits(2),
//	))
//	if err != nil {
//	    return err
//	}
//	m.MatchString("-1.234,50") // true
//
// Build returns the pattern text instead, for use in other regex engines. The
// output is deterministic for a given (Options, Profile) pair.
//
// # Matching
//
// Matcher.MatchString only reports true when the match spans the whole
// input. Use it rather than the raw *regexp.Regexp when validating.
//
// # Known interactions
//
// Grouping replaces the digit body, so DigitCount is not enforced once a
// grouping option other than GroupingNone is set. GroupingRequired and
// GroupingOptional both accept numbers too short to have a group boundary
// ("0", "999"). Optional decimal digits only count after the decimal
// separator, so "12345678" does not match six digits with up to two optional
// decimals; patterns that make the separator alone optional would accept it.
// Digits are ASCII only.
//
// # Caching
//
// Digits and the preset matchers (SixDigitsMatcher and friends) are compiled
// once at package initialization. Build and Compile keep no state. Cache memoizes compiled matchers in a
// bounded LRU for callers that compile the same combinations repeatedly.
//
// # Error Handling
//
//   - ErrInvalidOption       – enumeration value out of range or bad count.
//   - ErrUnsupportedLayout   – the profile's sign is not before or after the number.
//   - ErrUnsupportedGrouping – the profile does not declare one uniform group size.
//
// Profile errors from numformat, such as ErrInvalidProfile, pass through unchanged.
package numregex
