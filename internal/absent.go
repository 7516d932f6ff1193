package internal

import "reflect"

// IsAbsent reports whether v holds no value: a nil interface, or a nil
// pointer, map, slice, channel, function or interface wrapped in v.
// Values of other kinds are never absent.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
