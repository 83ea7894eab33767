package numregex

import (
	"fmt"
	"regexp"
)

// Matcher reports whether an entire string is a validly formatted number.
// It is safe for concurrent use.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

func newMatcher(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// MatchString reports whether the match spans all of s.
func (m *Matcher) MatchString(s string) bool {
	loc := m.re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// Match is MatchString for byte slices.
func (m *Matcher) Match(b []byte) bool {
	loc := m.re.FindIndex(b)
	return loc != nil && loc[0] == 0 && loc[1] == len(b)
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.pattern
}

// Regexp exposes the compiled expression for callers that need submatches.
func (m *Matcher) Regexp() *regexp.Regexp {
	return m.re
}
