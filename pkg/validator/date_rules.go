package validator

import (
	"strings"
	"time"
)

// DefaultDateFormat is used by Date when no format is given.
const DefaultDateFormat = "YYYY-MM-DD"

// Supported format tokens. Longer tokens come first so "YYYY" is never read
// as two "YY". Anything else in a format is copied into the layout verbatim,
// which means plain Go layouts such as "2006-01-02 15:04" work unchanged.
var layoutTokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"hh", "03",
	"mm", "04",
	"ss", "05",
)

// Layout translates a date format such as "YYYY-MM-DD HH:mm" into a Go time layout.
func Layout(format string) string {
	return layoutTokens.Replace(format)
}

// Date reports whether value is a real calendar date written exactly in format
// (DefaultDateFormat when omitted). Formatting the parsed time must reproduce
// value, so "2024-02-30", "2024-2-5" and "1980-06-15 00:00" all fail for YYYY-MM-DD.
func Date(value any, format ...string) bool {
	_, ok := parseDate(Stringify(value), dateFormat(format, DefaultDateFormat))
	return ok
}

// parseDate parses s under format and requires the result to format back to
// s exactly. time.Parse alone accepts fractional seconds the layout does not
// mention, so "10:00:00.5" would pass for "HH:mm:ss".
func parseDate(s, format string) (time.Time, bool) {
	layout := Layout(format)
	t, err := time.Parse(layout, s)
	if err != nil || t.Format(layout) != s {
		return time.Time{}, false
	}
	return t, true
}

// dateFormat picks the first optional format argument. An empty argument,
// as produced by a trailing separator in "between||1||10||", counts as absent.
func dateFormat(format []string, fallback string) string {
	if len(format) > 0 && format[0] != "" {
		return format[0]
	}
	return fallback
}
