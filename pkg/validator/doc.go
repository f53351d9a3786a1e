// Package validator provides the fixed library of field predicates used by the
// validation engine, together with the registry that maps rule names to them.
//
// Every predicate is a pure function of its inputs: it takes the value under
// test plus string arguments and reports pass or fail. Nothing is cached and
// nothing panics; input a predicate cannot interpret (an invalid regular
// expression, an unparsable date or bound) simply fails.
//
// # Predicates
//
//   - required – not nil, "", false or an empty slice/map/array
//   - equal    – a string identical to the argument, no coercion
//   - match    – full match of an anchored regular expression
//   - email    – syntactically valid email address
//   - url      – syntactically valid absolute URL
//   - date     – real date written exactly in a format (default YYYY-MM-DD)
//   - min, max, between, less, greater – ordered comparisons
//
// # Comparison semantics
//
// The comparison predicates pick their mode from the inputs. When a date
// format is supplied, value and bounds are parsed as dates and compared
// chronologically. Otherwise a value that reads as a decimal number is compared
// by magnitude and any other value by its length in characters:
//
//	validator.Min("17", "16")     // true, 17 >= 16
//	validator.Min("9", "10")      // false, numeric, not lexicographic
//	validator.Min("abcdef", "5")  // true, six characters
//	validator.Less("2024-01-01", "2024-06-01", "YYYY-MM-DD") // true
//
// Callers validating text length must be aware that numeric-looking strings
// such as "12345" are compared by value.
//
// # Date formats
//
// Formats use the tokens YYYY, YY, MM, DD, HH, hh, mm and ss. Text without
// tokens is used as a Go layout directly, so "2006-01-02" is accepted too.
//
// # Dispatch
//
// Default returns the Registry of built-in predicates. Lookup folds case, so
// "Min" and "min" resolve alike. Extend builds a new registry with additional
// predicates while leaving the original untouched:
//
//	reg, err := validator.Default().Extend(validator.Definition{
//	    Name:  "nonzero",
//	    Check: func(v any, _ ...string) bool { return validator.Stringify(v) != "0" },
//	})
package validator
