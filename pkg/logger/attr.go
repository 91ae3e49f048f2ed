package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Param records a parameter name under the key "param".
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Validator records a validator display name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Callable records the validated callable under the key "callable".
// An empty name yields an empty Attr.
func Callable(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("callable", name)
}

// Pattern records a pattern source, such as a file path, under the key "pattern".
func Pattern(source string) slog.Attr {
	return slog.String("pattern", source)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
