package record

import (
	"errors"
	"fmt"
	"reflect"

	"value-objects/coerce"
	"value-objects/export"
	"value-objects/internal/match"
	"value-objects/tree"
)

var ErrNotRecord = errors.New("record: value is not a non-nil pointer to a struct")

var exportableType = reflect.TypeFor[export.Exportable]()

func structOf(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotRecord, v)
	}

	return rv.Elem(), nil
}

// Snapshot returns the raw field values of the record v in declaration
// order. Nullable primitives are dereferenced, nested objects are kept as
// they are.
func Snapshot(v any) (*tree.Map, error) {
	rv, err := structOf(v)
	if err != nil {
		return nil, err
	}

	fields := fieldsOf(rv.Type())

	m := tree.NewOrdered[any](len(fields))
	for _, f := range fields {
		m.SetField(f.name, rawValue(rv.FieldByIndex(f.index)))
	}

	return m, nil
}

func rawValue(fv reflect.Value) any {
	if fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() != reflect.Struct {
		if fv.IsNil() {
			return nil
		}
		return fv.Elem().Interface()
	}

	return fv.Interface()
}

// Export converts every entry of a snapshot into its tree form.
func Export(snapshot *tree.Map) (*tree.Map, error) {
	out := tree.NewOrdered[any](snapshot.Len())
	for k, v := range snapshot.All() {
		exported, err := export.Value(k.String(), v)
		if err != nil {
			return nil, err
		}
		out.Set(k, exported)
	}

	return out, nil
}

// ToTree exports the record v as a mapping.
func ToTree(v any) (any, error) {
	snapshot, err := Snapshot(v)
	if err != nil {
		return nil, err
	}

	m, err := Export(snapshot)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// FromTree updates the record v from data, a mapping. Keys naming no field
// are ignored and fields missing from data keep their values. A nil data is
// a no-op.
//
// Fields holding an Exportable are updated in place through its FromTree.
// Other fields are assigned after coercing the value to the field type.
// nil assigned to a field that cannot hold it is ignored.
func FromTree(v any, data any) error {
	rv, err := structOf(v)
	if err != nil {
		return err
	}

	m, err := mapping(data)
	if err != nil || m == nil {
		return err
	}

	fields := fieldsOf(rv.Type())
	for k, value := range m.All() {
		f, ok := lookupField(fields, k.String())
		if !ok || f.name != k.String() {
			continue
		}

		if err := assign(rv.FieldByIndex(f.index), f.name, value); err != nil {
			return err
		}
	}

	return nil
}

func mapping(data any) (*tree.Map, error) {
	switch val := data.(type) {
	case nil:
		return nil, nil
	case *tree.Map:
		return val, nil
	case []any:
		// integer keys never name a field
		return nil, nil
	case map[string]any:
		plain, _ := tree.Plain(val)
		if m, ok := plain.(*tree.Map); ok {
			return m, nil
		}
	}

	return nil, coerce.Mismatch("mapping", data)
}

// SetField assigns value to the field of v named name, by tree name or Go
// field name, with the same rules as FromTree.
func SetField(v any, name string, value any) error {
	rv, err := structOf(v)
	if err != nil {
		return err
	}

	fields := fieldsOf(rv.Type())

	f, ok := lookupField(fields, name)
	if !ok {
		return unknownField(v, name, fields)
	}

	return assign(rv.FieldByIndex(f.index), f.name, value)
}

func unknownField(v any, name string, fields []field) error {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}

	if suggestion, ok := match.Closest(name, names); ok {
		return fmt.Errorf("record: %T has no field %q, did you mean %q", v, name, suggestion)
	}

	return fmt.Errorf("record: %T has no field %q", v, name)
}

// Has reports whether v is a record with a field named name.
func Has(v any, name string) bool {
	rv, err := structOf(v)
	if err != nil {
		return false
	}

	_, ok := lookupField(fieldsOf(rv.Type()), name)

	return ok
}

func assign(fv reflect.Value, name string, value any) error {
	if handled, err := delegate(fv, name, value); handled {
		return err
	}

	if value == nil {
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			fv.Set(reflect.Zero(fv.Type()))
		}
		return nil
	}

	converted, err := convert(fv.Type(), name, value)
	if err != nil {
		return err
	}

	fv.Set(converted)

	return nil
}

// delegate hands value to the Exportable held by fv. It reports false when
// fv holds no object.
func delegate(fv reflect.Value, name string, value any) (bool, error) {
	switch fv.Kind() {
	case reflect.Struct:
		e, ok := fv.Addr().Interface().(export.Exportable)
		if !ok {
			return true, &export.NotExportableError{Key: name, Type: fv.Type().String()}
		}
		return true, e.FromTree(value)

	case reflect.Pointer:
		if fv.Type().Elem().Kind() != reflect.Struct {
			return false, nil
		}

		if fv.IsNil() {
			if value == nil {
				return true, nil
			}
			if !fv.Type().Implements(exportableType) {
				return true, &export.NotExportableError{Key: name, Type: fv.Type().String()}
			}
			fv.Set(reflect.New(fv.Type().Elem()))
		}

		e, ok := fv.Interface().(export.Exportable)
		if !ok {
			return true, &export.NotExportableError{Key: name, Type: fv.Type().String()}
		}
		return true, e.FromTree(value)

	case reflect.Interface:
		if fv.IsNil() {
			return false, nil
		}

		if e, ok := fv.Elem().Interface().(export.Exportable); ok {
			return true, e.FromTree(value)
		}
	}

	return false, nil
}

// convert coerces a non-nil tree value to the Go type rt.
func convert(rt reflect.Type, name string, value any) (reflect.Value, error) {
	switch rt.Kind() {
	case reflect.Interface:
		return coerce.ConvertTo(value, rt)

	case reflect.Pointer:
		if rt.Elem().Kind() == reflect.Struct {
			break
		}

		inner, err := convert(rt.Elem(), name, value)
		if err != nil {
			return reflect.Value{}, err
		}

		p := reflect.New(rt.Elem())
		p.Elem().Set(inner)
		return p, nil

	case reflect.Struct:
		p := reflect.New(rt)
		e, ok := p.Interface().(export.Exportable)
		if !ok {
			return reflect.Value{}, &export.NotExportableError{Key: name, Type: rt.String()}
		}
		if err := e.FromTree(value); err != nil {
			return reflect.Value{}, err
		}
		return p.Elem(), nil

	case reflect.Slice:
		if rt != reflect.TypeFor[[]any]() {
			return convertSlice(rt, name, value)
		}

	case reflect.Map:
		return convertMap(rt, name, value)
	}

	types := coerce.TypesOf(rt)
	if len(types) == 0 {
		return reflect.Value{}, fmt.Errorf("record: field %s: %w", name, coerce.Mismatch(rt.String(), value))
	}

	coerced, err := coerce.Coerce(value, types...)
	if err != nil {
		return reflect.Value{}, wrapMismatch(name, err)
	}

	out, err := coerce.ConvertTo(coerced, rt)
	if err != nil {
		return reflect.Value{}, wrapMismatch(name, err)
	}

	return out, nil
}

func convertSlice(rt reflect.Type, name string, value any) (reflect.Value, error) {
	coerced, err := coerce.Coerce(value, coerce.Sequence)
	if err != nil {
		return reflect.Value{}, wrapMismatch(name, err)
	}

	items, ok := coerced.([]any)
	if !ok {
		return reflect.Value{}, fmt.Errorf("record: field %s: %w", name, coerce.Mismatch(rt.String(), coerced))
	}

	out := reflect.MakeSlice(rt, len(items), len(items))
	for i, item := range items {
		if item == nil {
			continue
		}

		converted, err := convert(rt.Elem(), fmt.Sprintf("%s.%d", name, i), item)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(converted)
	}

	return out, nil
}

func convertMap(rt reflect.Type, name string, value any) (reflect.Value, error) {
	m, err := mapping(value)
	if err != nil {
		return reflect.Value{}, wrapMismatch(name, err)
	}

	out := reflect.MakeMapWithSize(rt, m.Len())
	for k, item := range m.All() {
		key, err := mapKey(rt.Key(), k)
		if err != nil {
			return reflect.Value{}, wrapMismatch(name, err)
		}

		elem := reflect.Zero(rt.Elem())
		if item != nil {
			elem, err = convert(rt.Elem(), name+"."+k.String(), item)
			if err != nil {
				return reflect.Value{}, err
			}
		}

		out.SetMapIndex(key, elem)
	}

	return out, nil
}

func mapKey(rt reflect.Type, k tree.Key) (reflect.Value, error) {
	if rt.Kind() == reflect.String {
		return coerce.ConvertTo(k.String(), rt)
	}

	if i, ok := k.Int(); ok {
		return coerce.ConvertTo(i, rt)
	}

	return reflect.Value{}, coerce.Mismatch(rt.String(), k.String())
}

func wrapMismatch(name string, err error) error {
	if errors.Is(err, coerce.ErrTypeMismatch) {
		return fmt.Errorf("record: field %s: %w", name, err)
	}

	return err
}
