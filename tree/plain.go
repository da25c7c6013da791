package tree

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Scalar normalizes a scalar Go value into its tree form: sized and unsigned
// integers become int, float32 becomes float64, json.Number becomes int or
// float64. It reports false for non-scalar values and for integers that do
// not fit into int.
func Scalar(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case bool, int, float64, string:
		return val, true
	case int8:
		return int(val), true
	case int16:
		return int(val), true
	case int32:
		return int(val), true
	case int64:
		if int64(int(val)) != val {
			return nil, false
		}
		return int(val), true
	case uint8:
		return int(val), true
	case uint16:
		return int(val), true
	case uint32:
		return int(val), true
	case uint:
		if val > math.MaxInt {
			return nil, false
		}
		return int(val), true
	case uint64:
		if val > math.MaxInt {
			return nil, false
		}
		return int(val), true
	case float32:
		return float64(val), true
	case json.Number:
		if i, err := strconv.Atoi(val.String()); err == nil {
			return i, true
		}
		f, err := val.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Scalar(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Scalar(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return nil, false
	}
}

// IsScalar reports whether v is a scalar (nil excluded).
func IsScalar(v any) bool {
	if v == nil {
		return false
	}

	_, ok := Scalar(v)
	return ok
}

// Plain converts a Go-native value made of scalars, slices, arrays and maps
// with string or integer keys into a tree value. Maps of Go's unordered
// kind are emitted with keys sorted by their textual form. It reports false
// when v contains anything else, such as a struct or a pointer.
func Plain(v any) (any, bool) {
	if s, ok := Scalar(v); ok {
		return s, true
	}

	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			p, ok := Plain(item)
			if !ok {
				return nil, false
			}
			out[i] = p
		}
		return out, true

	case *Map:
		out := NewOrdered[any](val.Len())
		for k, item := range val.All() {
			p, ok := Plain(item)
			if !ok {
				return nil, false
			}
			out.Set(k, p)
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, true
		}

		out := make([]any, rv.Len())
		for i := range out {
			p, ok := Plain(rv.Index(i).Interface())
			if !ok {
				return nil, false
			}
			out[i] = p
		}
		return out, true

	case reflect.Map:
		if rv.IsNil() {
			return nil, true
		}

		keys, ok := SortedKeys(rv)
		if !ok {
			return nil, false
		}

		out := NewOrdered[any](len(keys))
		for _, k := range keys {
			p, ok := Plain(rv.MapIndex(k.value).Interface())
			if !ok {
				return nil, false
			}
			out.Set(k.key, p)
		}
		return out, true
	}

	return nil, false
}

// MapKey pairs a reflected Go map key with its tree Key.
type MapKey struct {
	key   Key
	value reflect.Value
}

// Key returns the tree key.
func (k MapKey) Key() Key {
	return k.key
}

// Value returns the reflected Go map key.
func (k MapKey) Value() reflect.Value {
	return k.value
}

// SortedKeys returns the keys of a reflected Go map converted to tree keys
// and sorted by their textual form. Only string and integer keyed maps are
// supported.
func SortedKeys(m reflect.Value) ([]MapKey, bool) {
	keys := make([]MapKey, 0, m.Len())

	for _, k := range m.MapKeys() {
		switch k.Kind() {
		case reflect.String:
			keys = append(keys, MapKey{key: ParseKey(k.String()), value: k})
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			keys = append(keys, MapKey{key: Int(int(k.Int())), value: k})
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if k.Uint() > math.MaxInt {
				return nil, false
			}
			keys = append(keys, MapKey{key: Int(int(k.Uint())), value: k})
		default:
			return nil, false
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].key.String() < keys[j].key.String()
	})

	return keys, true
}
