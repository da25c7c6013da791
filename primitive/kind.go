package primitive

import (
	"reflect"
	"strings"

	"value-objects/tree"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Lister is implemented by containers that can hand out a plain copy of
// their values in order.
type Lister interface {
	List() []any
}

// Keyed is implemented by containers whose keys are part of their value.
// Converting one to a sequence keeps the keys unless they are 0..n-1.
type Keyed interface {
	Entries() []tree.Entry[any]
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat:
		return true
	}
}

func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindInt, KindFloat, KindString:
		return true
	}
}

// TypeName returns the name used in descriptors and error messages.
func (k KindEnum) TypeName() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	default:
		return k.String()
	}
}

// ParseKind resolves a descriptor name. Common aliases are accepted:
// bool, int, double, array.
func ParseKind(name string) (KindEnum, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool":
		return KindBool, true
	case "integer", "int":
		return KindInt, true
	case "float", "double":
		return KindFloat, true
	case "string":
		return KindString, true
	case "sequence", "array":
		return KindSequence, true
	default:
		return 0, false
	}
}

// FromValue returns the runtime kind of v. Every Go integer kind maps to
// KindInt, every float kind to KindFloat and every slice or array to
// KindSequence. Anything else, nil included, yields the zero kind.
func FromValue(v any) KindEnum {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return KindBool
	case int:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	case []any:
		return KindSequence
	}

	return FromReflectType(reflect.TypeOf(v))
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindSequence
	}
}
