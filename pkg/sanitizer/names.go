package sanitizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSanitizer is returned by Lookup for names it does not know.
var ErrUnknownSanitizer = errors.New("unknown sanitizer")

var byName = map[string]Func{
	"trim":          Trim,
	"collapse":      CollapseSpaces,
	"strip-control": StripControl,
	"lower":         ToLower,
	"none":          Identity,
}

// Lookup returns the Func registered under name: trim, collapse,
// strip-control, lower or none.
func Lookup(name string) (Func, error) {
	fn, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
	}
	return fn, nil
}

// Parse resolves names with Lookup and chains the results in order.
func Parse(names ...string) (Func, error) {
	fns := make([]Func, 0, len(names))
	for _, name := range names {
		fn, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return Chain(fns...), nil
}
