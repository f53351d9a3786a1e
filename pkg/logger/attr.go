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

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SessionID records the validation session identifier.
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// Alias records the alias a value's errors are reported under.
func Alias(alias string) slog.Attr {
	return slog.String("alias", alias)
}

// Rule records a rule name.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Field records a record field name. Empty names produce an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Count records a number of items under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
