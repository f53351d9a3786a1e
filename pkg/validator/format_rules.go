package validator

import (
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// formats is shared by every predicate; go-playground validators are safe for
// concurrent use once built.
var formats = playground.New()

// Email reports whether value is a syntactically valid email address.
func Email(value any) bool {
	return checkFormat(Stringify(value), "email")
}

// URL reports whether value is a syntactically valid absolute URL, i.e. it has
// a scheme and either a host or an opaque part ("mailto:a@b.c").
func URL(value any) bool {
	return checkFormat(Stringify(value), "url")
}

func checkFormat(s, tag string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	return formats.Var(s, tag) == nil
}
