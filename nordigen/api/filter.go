package api

import "reflect"

// Params parameters sent with a request: query string for GET/DELETE, JSON body for POST/PUT.
type Params map[string]any

// Filter returns a copy of data without falsy values (nil, false, "", 0, empty collections, nil pointers).
// The API treats an explicit empty parameter differently than a missing one, so falsy values are never sent.
func Filter(data Params) Params {
	out := make(Params, len(data))
	for k, v := range data {
		if truthy(v) {
			out[k] = v
		}
	}
	return out
}

func truthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem().Interface())
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Func:
		return !rv.IsNil()
	}
	return true
}
