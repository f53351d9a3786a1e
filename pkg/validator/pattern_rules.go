package validator

import "regexp"

// Match reports whether the whole of value matches pattern. The pattern is
// anchored at both ends, so "[1-9]\d{3}" accepts "1000" but not "10000".
// An invalid pattern fails rather than panicking. The pattern is compiled on
// every call; hot paths that reuse one pattern should compile it themselves.
func Match(value any, pattern string) bool {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return false
	}
	return re.MatchString(Stringify(value))
}
