package validator

import (
	"fmt"
	"reflect"
	"strconv"
)

// Stringify converts a raw input value to the string form predicates operate on.
// nil, false, empty slices/maps/arrays and nil pointers become "", true
// becomes "1", numbers use their shortest decimal form.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}

	// Empty containers and nil pointers read as absent, matching Required.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		if rv.Len() == 0 {
			return ""
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(value)
}

// Required reports whether value is present: not nil, not "", not false and,
// for slices, maps and arrays, not empty. Whitespace is not trimmed here.
func Required(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Equal reports whether value is a string identical to compare. No coercion
// is applied, so the integer 15 is not equal to "15".
func Equal(value any, compare string) bool {
	s, ok := value.(string)
	return ok && s == compare
}
