package validator

// Min reports whether value >= bound. Numeric values compare by magnitude,
// other strings by character count, so Min("abcdef", "5") holds while
// Min("9", "10") does not. With a format, value and bound compare as dates.
func Min(value any, bound string, format ...string) bool {
	c, ok := compare(value, bound, dateFormat(format, ""))
	return ok && c >= 0
}

// Max reports whether value <= bound, using the same semantics as Min.
func Max(value any, bound string, format ...string) bool {
	c, ok := compare(value, bound, dateFormat(format, ""))
	return ok && c <= 0
}

// Between reports whether low <= value <= high.
func Between(value any, low, high string, format ...string) bool {
	return Min(value, low, format...) && Max(value, high, format...)
}

// Less reports whether value < bound.
func Less(value any, bound string, format ...string) bool {
	c, ok := compare(value, bound, dateFormat(format, ""))
	return ok && c < 0
}

// Greater reports whether value > bound.
func Greater(value any, bound string, format ...string) bool {
	c, ok := compare(value, bound, dateFormat(format, ""))
	return ok && c > 0
}
