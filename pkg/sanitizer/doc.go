// Package sanitizer normalises raw field values before they are validated.
//
// A validation session runs every bound value through a Func; the default is
// Trim, which mirrors how form input is usually cleaned. Chain combines
// several steps into one:
//
//	clean := sanitizer.Chain(sanitizer.StripControl, sanitizer.CollapseSpaces)
//	s := validation.New(validation.WithSanitizer(clean))
//
// All functions are pure and safe for concurrent use.
package sanitizer
