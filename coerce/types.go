package coerce

import (
	"fmt"
	"reflect"

	"value-objects/export"
	"value-objects/primitive"
	"value-objects/tree"
)

// Type describes a declared type a value can be coerced to.
//
// Convert returns the converted value, or nil when its rule does not apply
// to value. Accepts is the final validity check on the selected value.
type Type interface {
	Name() string
	Convert(value any, allowed primitive.CategoryEnum) (any, error)
	Accepts(value any) bool
}

var (
	Bool     = Kind(primitive.KindBool)
	Int      = Kind(primitive.KindInt)
	Float    = Kind(primitive.KindFloat)
	String   = Kind(primitive.KindString)
	Sequence = Kind(primitive.KindSequence)
)

type kindType struct {
	kind primitive.KindEnum
}

// Kind returns the descriptor of a primitive kind.
func Kind(k primitive.KindEnum) Type {
	return kindType{kind: k}
}

func (t kindType) Name() string {
	return t.kind.TypeName()
}

func (t kindType) Convert(value any, allowed primitive.CategoryEnum) (any, error) {
	return primitive.Convert(value, t.kind, allowed), nil
}

func (t kindType) Accepts(value any) bool {
	var ok bool

	switch t.kind {
	case primitive.KindBool:
		_, ok = value.(bool)
	case primitive.KindInt:
		_, ok = value.(int)
	case primitive.KindFloat:
		_, ok = value.(float64)
	case primitive.KindString:
		_, ok = value.(string)
	case primitive.KindSequence:
		switch val := value.(type) {
		case []any:
			ok = true
		case *tree.Map:
			ok = val != nil
		}
	}

	return ok
}

type objectType struct {
	name    string
	rtype   reflect.Type
	factory func() export.Exportable
}

// Object returns the descriptor of the Exportable type T, which must be a
// pointer to a struct. Tree-shaped values are converted by creating a new
// T and filling it with FromTree.
func Object[T export.Exportable]() Type {
	t, ok := ObjectOf(reflect.TypeFor[T]())
	if !ok {
		panic(fmt.Sprintf("coerce: Object requires a pointer to struct, got %s", reflect.TypeFor[T]()))
	}

	return t
}

// ObjectFunc returns the descriptor of the Exportable type T created by
// factory.
func ObjectFunc[T export.Exportable](name string, factory func() T) Type {
	return objectType{
		name:    name,
		rtype:   reflect.TypeFor[T](),
		factory: func() export.Exportable { return factory() },
	}
}

// ObjectOf returns the descriptor of rt when it is a pointer to a struct
// implementing export.Exportable.
func ObjectOf(rt reflect.Type) (Type, bool) {
	if rt == nil || rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		return nil, false
	}

	if !rt.Implements(reflect.TypeFor[export.Exportable]()) {
		return nil, false
	}

	return objectType{
		name:  rt.String(),
		rtype: rt,
		factory: func() export.Exportable {
			return reflect.New(rt.Elem()).Interface().(export.Exportable)
		},
	}, true
}

func (t objectType) Name() string {
	return t.name
}

func (t objectType) Convert(value any, _ primitive.CategoryEnum) (any, error) {
	switch value.(type) {
	case *tree.Map, []any:
	case map[string]any:
		value, _ = tree.Plain(value)
	default:
		return nil, nil
	}

	obj := t.factory()
	if err := obj.FromTree(value); err != nil {
		return nil, err
	}

	return obj, nil
}

func (t objectType) Accepts(value any) bool {
	return value != nil && reflect.TypeOf(value).AssignableTo(t.rtype)
}

// TypeFor derives the declaration of the Go type T:
//   - bool, int, float64, string and []any map to their primitive kind
//   - other integer, float, bool and string kinds map to the matching
//     primitive kind, the result is converted by As
//   - pointers to Exportable structs map to Object
//   - other pointers map to the declaration of their element type, the
//     pointer form holds null
//
// Interfaces and other types yield no declaration, leaving values
// unconverted.
func TypeFor[T any]() []Type {
	return TypesOf(reflect.TypeFor[T]())
}

// TypesOf is the reflective form of TypeFor.
func TypesOf(rt reflect.Type) []Type {
	if rt == nil || rt.Kind() == reflect.Interface {
		return nil
	}

	if t, ok := ObjectOf(rt); ok {
		return []Type{t}
	}

	switch rt.Kind() {
	case reflect.Pointer:
		if rt.Elem().Kind() == reflect.Struct {
			return nil
		}
		return TypesOf(rt.Elem())
	case reflect.Slice, reflect.Array:
		if rt == reflect.TypeFor[[]any]() {
			return []Type{Sequence}
		}
		return nil
	}

	if k := primitive.FromReflectType(rt); k != 0 {
		return []Type{Kind(k)}
	}

	return nil
}
