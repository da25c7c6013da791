package coerce

import (
	"math"
	"reflect"

	"value-objects/export"
	"value-objects/primitive"
)

// Coercer applies declared types to values. The zero value and a nil
// *Coercer use every conversion category and no logger.
type Coercer struct {
	allowed primitive.CategoryEnum
	logger  Logger
	set     bool
}

// Option configures a Coercer instance.
type Option func(*Coercer)

// WithCategories limits the primitive conversions to the allowed categories.
func WithCategories(allowed primitive.CategoryEnum) Option {
	return func(c *Coercer) {
		c.allowed = allowed
		c.set = true
	}
}

// WithLogger attaches a logger receiving one event per coercion.
func WithLogger(logger Logger) Option {
	return func(c *Coercer) {
		c.logger = logger
	}
}

func New(opts ...Option) *Coercer {
	c := &Coercer{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Categories returns the enabled conversion categories.
func (c *Coercer) Categories() primitive.CategoryEnum {
	if c == nil || !c.set {
		return primitive.CategoryAll
	}

	return c.allowed
}

// Coerce converts value to the first candidate type that applies.
//
// With no candidates value is returned unchanged. A nil value, or a nil
// pointer, is valid for every declaration and yields nil. Errors raised by
// an Exportable's FromTree during conversion are returned as is; a value
// failing the final check yields a *MismatchError.
func Coerce(value any, types ...Type) (any, error) {
	return (*Coercer)(nil).Coerce(value, types...)
}

func (c *Coercer) Coerce(value any, types ...Type) (any, error) {
	if len(types) == 0 {
		return value, nil
	}

	if export.IsNil(value) {
		c.log(Event{Value: value, Type: types[0].Name()})
		return nil, nil
	}

	var target Type

	result := value
	for _, t := range types {
		target = t

		converted, err := t.Convert(value, c.Categories())
		if err != nil {
			c.log(Event{Value: value, Type: t.Name(), Err: err})
			return nil, err
		}

		if converted != nil {
			result = converted
			break
		}
	}

	if !target.Accepts(result) {
		err := Mismatch(target.Name(), result)
		c.log(Event{Value: value, Type: target.Name(), Err: err})
		return nil, err
	}

	c.log(Event{Value: value, Type: target.Name(), Result: result})

	return result, nil
}

func (c *Coercer) log(e Event) {
	if c == nil || c.logger == nil {
		return
	}

	c.logger.LogCoercion(e)
}

// As returns v as a T. Values that already are a T pass through; coerced
// primitives are converted to sized or named numeric, string and bool
// types, or pointers to them, when the value fits. nil yields the zero T.
func As[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T
	if v == nil {
		return zero, nil
	}

	out, err := ConvertTo(v, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	return out.Interface().(T), nil
}

// ConvertTo converts a coerced value into a reflect.Value of type rt.
func ConvertTo(v any, rt reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, Mismatch(rt.String(), v)
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(rt) {
		out := reflect.New(rt).Elem()
		out.Set(rv)
		return out, nil
	}

	out := reflect.New(rt).Elem()

	switch rt.Kind() {
	case reflect.Pointer:
		inner, err := ConvertTo(v, rt.Elem())
		if err != nil {
			return reflect.Value{}, Mismatch(rt.String(), v)
		}

		out.Set(reflect.New(rt.Elem()))
		out.Elem().Set(inner)
		return out, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := v.(int); ok && !out.OverflowInt(int64(i)) {
			out.SetInt(int64(i))
			return out, nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if i, ok := v.(int); ok && i >= 0 && !out.OverflowUint(uint64(i)) {
			out.SetUint(uint64(i))
			return out, nil
		}

	case reflect.Float32, reflect.Float64:
		if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f) || !out.OverflowFloat(f)) {
			out.SetFloat(f)
			return out, nil
		}

	case reflect.String:
		if s, ok := v.(string); ok {
			out.SetString(s)
			return out, nil
		}

	case reflect.Bool:
		if b, ok := v.(bool); ok {
			out.SetBool(b)
			return out, nil
		}
	}

	return reflect.Value{}, Mismatch(rt.String(), v)
}
