package numregex

import (
	"errors"

	"github.com/dmitrymomot/numregex/pkg/numformat"
)

var (
	// ErrInvalidOption is returned when an option value lies outside its
	// enumeration or a count cannot be expressed as a repetition.
	ErrInvalidOption = errors.New("invalid numeric pattern option")

	// ErrUnsupportedLayout is numformat.ErrUnsupportedLayout, re-exported so
	// callers can check build failures without importing numformat.
	ErrUnsupportedLayout = numformat.ErrUnsupportedLayout

	// ErrUnsupportedGrouping is numformat.ErrUnsupportedGrouping.
	ErrUnsupportedGrouping = numformat.ErrUnsupportedGrouping
)
