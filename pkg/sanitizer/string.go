package sanitizer

import (
	"strings"
	"unicode"
)

// Func transforms a raw value into its cleaned form.
type Func func(string) string

// Chain applies fns left to right. Nil entries are skipped.
func Chain(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			if fn != nil {
				s = fn(s)
			}
		}
		return s
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseSpaces trims s and replaces every run of whitespace inside it with a
// single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl removes control characters except tab, newline and carriage return.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// ToLower lowercases s. Useful ahead of "equal" checks on case-insensitive input.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// Identity returns s unchanged, for sessions that must see raw input.
func Identity(s string) string {
	return s
}
