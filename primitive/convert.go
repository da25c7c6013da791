package primitive

import (
	"reflect"
	"strconv"
	"strings"

	"value-objects/tree"
)

// Convert converts value to the kind to, using only the conversions the
// allowed categories permit. A value that already has the target kind is
// returned in its normalized tree form regardless of categories. Convert
// returns nil when no conversion applies.
func Convert(value any, to KindEnum, allowed CategoryEnum) any {
	if value == nil {
		return nil
	}

	if to == KindSequence {
		return toSequence(value, allowed)
	}

	scalar, ok := tree.Scalar(value)
	if !ok {
		return nil
	}

	from := FromValue(scalar)
	if from == to {
		return scalar
	}

	if !Allowed(from, to, allowed) {
		return nil
	}

	switch to {
	case KindBool:
		if b, ok := ToBool(scalar); ok {
			return b
		}
	case KindInt:
		if i, ok := ToInt(scalar); ok {
			return i
		}
	case KindFloat:
		if f, ok := ToFloat(scalar); ok {
			return f
		}
	case KindString:
		if s, ok := ToString(scalar); ok {
			return s
		}
	}

	return nil
}

// ToBool converts a normalized scalar permissively: "1", "true", "on",
// "yes" and 1 are true; "0", "false", "off", "no", "" and 0 are false.
func ToBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case int:
		return boolFromNumber(float64(val))
	case float64:
		return boolFromNumber(val)
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "true", "on", "yes":
			return true, true
		case "0", "false", "off", "no", "":
			return false, true
		}
	}

	return false, false
}

func boolFromNumber(f float64) (bool, bool) {
	switch f {
	case 1:
		return true, true
	case 0:
		return false, true
	default:
		return false, false
	}
}

// ToInt converts a normalized scalar to int when the value is exactly
// integral.
func ToInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case float64:
		return tree.IntegralFloat(val)
	case string:
		return tree.ParseInteger(val)
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	}

	return 0, false
}

// ToFloat converts a normalized scalar number, boolean or decimal numeric
// string to float64.
func ToFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		return tree.ParseNumber(val)
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	}

	return 0, false
}

// ToString renders a normalized scalar as text.
func ToString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case float64:
		return tree.FormatFloat(val), true
	}

	return "", false
}

func toSequence(value any, allowed CategoryEnum) any {
	switch val := value.(type) {
	case []any:
		return val
	case *tree.Map:
		return sequenceOf(val)
	}

	if !Allowed(KindSequence, KindSequence, allowed) {
		return nil
	}

	if k, ok := value.(Keyed); ok {
		m := tree.NewOrdered[any](0)
		for _, e := range k.Entries() {
			m.Set(e.Key, e.Value)
		}
		return sequenceOf(m)
	}

	if l, ok := value.(Lister); ok {
		if items := l.List(); items != nil {
			return items
		}
		return []any{}
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
	case reflect.Array:
	default:
		return nil
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// sequenceOf returns the values of a list-shaped mapping, and the mapping
// itself when its keys carry information.
func sequenceOf(m *tree.Map) any {
	if m.IsList() {
		if m.Len() == 0 {
			return []any{}
		}
		return m.Values()
	}

	return m
}
