package collection

import (
	"fmt"
	"iter"
	"reflect"

	"value-objects/coerce"
	"value-objects/export"
	"value-objects/primitive"
	"value-objects/tree"
)

// Collection is an ordered keyed container of T. The zero value is an empty
// collection using the types derived from T.
type Collection[T any] struct {
	opts  options
	store *tree.Ordered[T]
}

// New returns an empty collection configured by opts.
func New[T any](opts ...Option) *Collection[T] {
	c := &Collection[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c.opts)
		}
	}

	return c
}

// Types returns the declared types tried on insertion.
func (c *Collection[T]) Types() []coerce.Type {
	if c.opts.typesSet {
		return c.opts.types
	}

	return coerce.TypeFor[T]()
}

func (c *Collection[T]) ensure() *tree.Ordered[T] {
	if c.store == nil {
		c.store = tree.NewOrdered[T](0)
	}

	return c.store
}

// filter coerces v to the declared types and then to T. nil is stored as
// the zero T.
func (c *Collection[T]) filter(v any) (T, error) {
	var zero T

	coerced, err := c.opts.coercer.Coerce(v, c.Types()...)
	if err != nil {
		return zero, fmt.Errorf("collection: %w", err)
	}

	item, err := coerce.As[T](coerced)
	if err != nil {
		return zero, fmt.Errorf("collection: %w", err)
	}

	return item, nil
}

func (c *Collection[T]) Len() int {
	return c.store.Len()
}

func (c *Collection[T]) Get(k tree.Key) (T, bool) {
	return c.store.Get(k)
}

func (c *Collection[T]) Has(k tree.Key) bool {
	return c.store.Has(k)
}

func (c *Collection[T]) Keys() []tree.Key {
	return c.store.Keys()
}

func (c *Collection[T]) Values() []T {
	return c.store.Values()
}

// All iterates over the entries in order.
func (c *Collection[T]) All() iter.Seq2[tree.Key, T] {
	return c.store.All()
}

// List returns the values in order as a sequence.
func (c *Collection[T]) List() []any {
	values := c.store.Values()

	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// Delete removes k and reports whether it was present.
func (c *Collection[T]) Delete(k tree.Key) bool {
	return c.store.Delete(k)
}

// Append coerces v and stores it at the next integer key.
func (c *Collection[T]) Append(v any) error {
	item, err := c.filter(v)
	if err != nil {
		return err
	}

	c.ensure().Append(item)

	return nil
}

// Set coerces v and stores it at k, replacing any value already there.
func (c *Collection[T]) Set(k tree.Key, v any) error {
	item, err := c.filter(v)
	if err != nil {
		return err
	}

	c.ensure().Set(k, item)

	return nil
}

// Exchange replaces the whole content with data, keeping its keys. data is
// a sequence, a mapping, a Go slice or map, or another collection. Nothing
// changes when any element fails to coerce.
func (c *Collection[T]) Exchange(data any) error {
	entries, err := entriesOf(data)
	if err != nil {
		return err
	}

	store := tree.NewOrdered[T](len(entries))
	for _, e := range entries {
		item, err := c.filter(e.Value)
		if err != nil {
			return err
		}
		store.Set(e.Key, item)
	}

	c.store = store

	return nil
}

// Entries returns the entries in order.
func (c *Collection[T]) Entries() []tree.Entry[any] {
	out := make([]tree.Entry[any], 0, c.Len())
	for k, v := range c.All() {
		out = append(out, tree.Entry[any]{Key: k, Value: v})
	}

	return out
}

func entriesOf(data any) ([]tree.Entry[any], error) {
	switch val := data.(type) {
	case nil:
		return nil, nil
	case primitive.Keyed:
		return val.Entries(), nil
	case []any:
		return indexed(val), nil
	case primitive.Lister:
		return indexed(val.List()), nil
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]tree.Entry[any], rv.Len())
		for i := range out {
			out[i] = tree.Entry[any]{Key: tree.Int(i), Value: rv.Index(i).Interface()}
		}
		return out, nil

	case reflect.Map:
		keys, ok := tree.SortedKeys(rv)
		if !ok {
			break
		}

		out := make([]tree.Entry[any], len(keys))
		for i, k := range keys {
			out[i] = tree.Entry[any]{Key: k.Key(), Value: rv.MapIndex(k.Value()).Interface()}
		}
		return out, nil
	}

	return nil, fmt.Errorf("collection: %w", coerce.Mismatch("sequence", data))
}

func indexed(items []any) []tree.Entry[any] {
	out := make([]tree.Entry[any], len(items))
	for i, item := range items {
		out[i] = tree.Entry[any]{Key: tree.Int(i), Value: item}
	}

	return out
}

// MergeIn merges other into c: entries with a string key overwrite the entry
// with the same key, entries with an integer key are appended.
func (c *Collection[T]) MergeIn(other *Collection[T]) error {
	for k, v := range other.All() {
		var err error
		if k.IsInt() {
			err = c.Append(v)
		} else {
			err = c.Set(k, v)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// MergeInUniqueData adds the values of other that are not loosely equal to
// a value already in c. A value keeps its key when that key is free in c and
// is appended otherwise. Values are compared by their exported trees.
func (c *Collection[T]) MergeInUniqueData(other *Collection[T]) error {
	seen := make([]any, 0, c.Len()+other.Len())
	for k, v := range c.All() {
		exported, err := export.Value(k.String(), v)
		if err != nil {
			return err
		}
		seen = append(seen, exported)
	}

	for k, v := range other.All() {
		item, err := c.filter(v)
		if err != nil {
			return err
		}

		exported, err := export.Value(k.String(), item)
		if err != nil {
			return err
		}

		if containsEqual(seen, exported) {
			continue
		}

		if c.Has(k) {
			c.ensure().Append(item)
		} else {
			c.ensure().Set(k, item)
		}

		seen = append(seen, exported)
	}

	return nil
}

func containsEqual(values []any, v any) bool {
	for _, existing := range values {
		if tree.Equal(existing, v) {
			return true
		}
	}

	return false
}

// ToTree exports the collection. A collection keyed 0..n-1 in order exports
// as a sequence, any other as a mapping.
func (c *Collection[T]) ToTree() (any, error) {
	out := tree.NewOrdered[any](c.Len())
	for k, v := range c.All() {
		exported, err := export.Value(k.String(), v)
		if err != nil {
			return nil, err
		}
		out.Set(k, exported)
	}

	if out.IsList() {
		return out.Values(), nil
	}

	return out, nil
}

// FromTree replaces the content with data, see Exchange.
func (c *Collection[T]) FromTree(data any) error {
	return c.Exchange(data)
}
