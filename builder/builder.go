package builder

import (
	"slices"

	"value-objects/coerce"
	"value-objects/internal/common"
	"value-objects/internal/match"
	"value-objects/record"
	"value-objects/tree"
)

// CreateFunc builds one object from an input mapping.
type CreateFunc[T any] func(b *Builder[T], data *tree.Map) (T, error)

// Builder creates objects of type T with a CreateFunc. Builders hold no
// state between calls and may be shared.
type Builder[T any] struct {
	create     CreateFunc[T]
	normalized bool
}

// Option configures a Builder instance.
type Option func(*options)

type options struct {
	normalized bool
}

// WithNormalizedKeys makes key lookups fall back to keys spelling the same
// identifier, so "order_id", "orderId" and "OrderID" match each other.
func WithNormalizedKeys() Option {
	return func(o *options) {
		o.normalized = true
	}
}

func New[T any](create CreateFunc[T], opts ...Option) *Builder[T] {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Builder[T]{create: create, normalized: o.normalized}
}

// Build runs the create function on data, a mapping. nil is an empty
// mapping.
func (b *Builder[T]) Build(data any) (T, error) {
	var zero T

	m, err := toMapping(data)
	if err != nil {
		return zero, err
	}

	return b.create(b, m)
}

func toMapping(data any) (*tree.Map, error) {
	if data == nil {
		return tree.NewMap(), nil
	}

	if m, ok := data.(*tree.Map); ok {
		return m, nil
	}

	if plain, ok := tree.Plain(data); ok {
		if m, ok := plain.(*tree.Map); ok {
			return m, nil
		}
	}

	return nil, coerce.Mismatch("mapping", data)
}

// SetValue assigns the field of obj from data. The candidate keys are tried
// in order, followed by the field name itself. Every candidate present in
// data is assigned; the search stops at the first value that is not nil, or
// not empty when notNull is false.
func (b *Builder[T]) SetValue(obj any, field string, data *tree.Map, keys []string, notNull bool) error {
	candidates := common.Compact(append(slices.Clone(keys), field))

	for _, key := range candidates {
		v, ok := b.lookup(key, data)
		if !ok {
			continue
		}

		if err := record.SetField(obj, field, v); err != nil {
			return err
		}

		if (notNull && v != nil) || (!notNull && !isEmpty(v)) {
			break
		}
	}

	return nil
}

// GetValue returns the value stored under key in data, or nil.
func (b *Builder[T]) GetValue(key string, data *tree.Map) any {
	v, _ := b.lookup(key, data)
	return v
}

func (b *Builder[T]) lookup(key string, data *tree.Map) (any, bool) {
	if v, ok := data.Lookup(key); ok {
		return v, true
	}

	if !b.normalized {
		return nil, false
	}

	for k, v := range data.All() {
		if match.Same(k.String(), key) {
			return v, true
		}
	}

	return nil, false
}

// isEmpty reports nil, false, zero numbers, "", "0" and empty containers.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case int:
		return val == 0
	case float64:
		return val == 0
	case string:
		return val == "" || val == "0"
	case []any:
		return len(val) == 0
	case *tree.Map:
		return val.Len() == 0
	}

	return false
}
