package validation

import (
	"errors"
	"slices"
	"strings"
)

// ErrorMap maps an alias to the message of the first rule its value failed.
// It implements error so a non-empty map can be returned directly.
type ErrorMap map[string]string

func (m ErrorMap) Error() string {
	if len(m) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(m))
	for _, alias := range m.Fields() {
		parts = append(parts, alias+": "+m[alias])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (m ErrorMap) Has(alias string) bool {
	_, ok := m[alias]
	return ok
}

// Get returns the message recorded for alias, or "".
func (m ErrorMap) Get(alias string) string {
	return m[alias]
}

// Fields returns the aliases with errors in sorted order.
func (m ErrorMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for alias := range m {
		fields = append(fields, alias)
	}
	slices.Sort(fields)
	return fields
}

func (m ErrorMap) IsEmpty() bool {
	return len(m) == 0
}

// Err returns m as an error, or nil when it is empty.
func (m ErrorMap) Err() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// ExtractErrorMap extracts an ErrorMap from an error chain.
func ExtractErrorMap(err error) ErrorMap {
	if err == nil {
		return nil
	}

	var m ErrorMap
	if errors.As(err, &m) {
		return m
	}
	return nil
}

// IsValidationError reports whether err carries validation failures as
// opposed to a configuration error.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var m ErrorMap
	return errors.As(err, &m)
}
