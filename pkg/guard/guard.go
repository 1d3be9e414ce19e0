// Package guard provides small runtime shape and nullability checks shared
// by the other utility packages.
package guard

import "reflect"

// IsPlainMap reports whether v is a non-nil map keyed by strings. This is
// the check the query-string serializer uses to decide whether a value can
// be flattened into bracketed key paths.
func IsPlainMap(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
}

// IsNil reports whether v holds no usable value, seeing through typed nil
// pointers, maps, slices, channels, funcs and interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Compact drops nil entries from a slice of pointers and dereferences the
// remaining ones.
func Compact[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, *p)
	}
	return out
}
