package validator

import (
	"cmp"
	"errors"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Decimal notation accepted as numeric: optional sign, digits with an optional
// fraction, optional exponent. Hex, "Inf" and "NaN" are not numeric.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// IsNumeric reports whether value reads as a decimal number. Comparison
// predicates use it to choose between magnitude and length semantics.
func IsNumeric(value any) bool {
	_, ok := parseNumber(Stringify(value))
	return ok
}

// compare orders value against bound.
//
// With a format both sides are parsed as dates and compared chronologically.
// Without one, a numeric value is compared by magnitude and any other value by
// its length in characters; bound itself must be numeric in that case.
// The second result is false when either side cannot be interpreted.
func compare(value any, bound, format string) (int, bool) {
	s := Stringify(value)

	if format != "" {
		v, ok := parseDate(s, format)
		if !ok {
			return 0, false
		}
		b, ok := parseDate(bound, format)
		if !ok {
			return 0, false
		}
		return v.Compare(b), true
	}

	limit, ok := parseNumber(bound)
	if !ok {
		return 0, false
	}
	return cmp.Compare(magnitude(s), limit), true
}

func magnitude(s string) float64 {
	if n, ok := parseNumber(s); ok {
		return n
	}
	return float64(utf8.RuneCountInString(s))
}

func parseNumber(s string) (float64, bool) {
	if !numericRegex.MatchString(s) {
		return 0, false
	}
	// Out of range values come back as ±Inf with ErrRange and still order correctly.
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}
