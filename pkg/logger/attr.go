package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Locale records a locale or profile name under the key "locale".
func Locale(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("locale", name)
}

// Pattern records a generated regular expression under the key "pattern".
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Options records pattern options under the key "options". Values
// implementing fmt.Stringer are logged by their string form.
func Options(o any) slog.Attr {
	if o == nil {
		return slog.Attr{}
	}
	if s, ok := o.(fmt.Stringer); ok {
		return slog.String("options", s.String())
	}
	return slog.String("options", fmt.Sprintf("%+v", o))
}

// Input records a value being validated under the key "input".
func Input(v string) slog.Attr {
	return slog.String("input", v)
}
