package validation

import (
	"log/slog"

	"github.com/K3nguruh/validation/pkg/sanitizer"
	"github.com/K3nguruh/validation/pkg/validator"
)

// Option configures a Session.
type Option func(*Session)

// WithRegistry sets the predicate registry rule names are resolved against.
// Defaults to validator.Default(). Nil is ignored.
func WithRegistry(r *validator.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithSeparator sets the delimiter between a rule name and its arguments.
// Defaults to DefaultSeparator. Empty values are ignored.
func WithSeparator(sep string) Option {
	return func(s *Session) {
		if sep != "" {
			s.separator = sep
		}
	}
}

// WithSanitizer replaces the default Trim step applied to every bound value.
// Calling it without functions disables sanitizing.
func WithSanitizer(fns ...sanitizer.Func) Option {
	return func(s *Session) {
		s.sanitize = sanitizer.Chain(fns...)
	}
}

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}
