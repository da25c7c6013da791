package export

import (
	"errors"
	"fmt"
	"reflect"

	"value-objects/tree"
)

// Exportable is implemented by types that can round-trip through a plain
// tree. FromTree updates the receiver in place.
type Exportable interface {
	ToTree() (any, error)
	FromTree(data any) error
}

var ErrNotExportable = errors.New("does not implement the Exportable interface")

// NotExportableError reports an object value found during export that is
// neither plain data nor Exportable.
type NotExportableError struct {
	Key  string
	Type string
}

func (e *NotExportableError) Error() string {
	return fmt.Sprintf("property %s of type %s %s", e.Key, e.Type, ErrNotExportable)
}

func (e *NotExportableError) Unwrap() error {
	return ErrNotExportable
}

// Value exports v for the entry named key:
//   - nil and nil pointers export as nil
//   - Exportable values export as their ToTree result
//   - pointers to non-struct values export as the value they point to
//   - scalars are normalized to tree scalars
//   - slices, arrays and maps with string or integer keys are walked
//
// Any other object fails with a NotExportableError naming key, or the path
// below key for nested elements.
func Value(key string, v any) (any, error) {
	if IsNil(v) {
		return nil, nil
	}

	if e, ok := v.(Exportable); ok {
		return e.ToTree()
	}

	if s, ok := tree.Scalar(v); ok {
		return s, nil
	}

	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			exported, err := Value(childKey(key, tree.Int(i)), item)
			if err != nil {
				return nil, err
			}
			out[i] = exported
		}
		return out, nil

	case *tree.Map:
		out := tree.NewOrdered[any](val.Len())
		for k, item := range val.All() {
			exported, err := Value(childKey(key, k), item)
			if err != nil {
				return nil, err
			}
			out.Set(k, exported)
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.Elem().Kind() != reflect.Struct {
			return Value(key, rv.Elem().Interface())
		}

	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			exported, err := Value(childKey(key, tree.Int(i)), rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = exported
		}
		return out, nil

	case reflect.Map:
		keys, ok := tree.SortedKeys(rv)
		if !ok {
			break
		}

		out := tree.NewOrdered[any](len(keys))
		for _, k := range keys {
			exported, err := Value(childKey(key, k.Key()), rv.MapIndex(k.Value()).Interface())
			if err != nil {
				return nil, err
			}
			out.Set(k.Key(), exported)
		}
		return out, nil

	case reflect.Struct:
		// struct values whose pointer type is Exportable
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if e, ok := ptr.Interface().(Exportable); ok {
			return e.ToTree()
		}
	}

	return nil, &NotExportableError{Key: key, Type: fmt.Sprintf("%T", v)}
}

// IsNil reports whether v is nil or a nil pointer, map, slice or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func childKey(parent string, k tree.Key) string {
	if parent == "" {
		return k.String()
	}

	return parent + "." + k.String()
}
