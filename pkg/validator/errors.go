package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is reported when a value does not match its numeric format.
	ErrInvalidFormat = errors.New("invalid format")
)
