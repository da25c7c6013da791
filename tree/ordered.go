package tree

import (
	"iter"
)

// Entry is a single key/value pair of an Ordered store.
type Entry[V any] struct {
	Key   Key
	Value V
}

// Ordered is an insertion-ordered store addressable by Key.
//
// Appending uses the next free integer key, which is one past the largest
// non-negative integer key currently present (0 when there is none). Setting
// an existing key overwrites the value in place without moving the entry.
//
// The zero value is an empty store ready to use.
type Ordered[V any] struct {
	entries []Entry[V]
	index   map[Key]int
	next    int
}

// Map is the ordered mapping used by tree values.
type Map = Ordered[any]

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// NewOrdered returns an empty store with room for size entries.
func NewOrdered[V any](size int) *Ordered[V] {
	return &Ordered[V]{
		entries: make([]Entry[V], 0, size),
		index:   make(map[Key]int, size),
	}
}

// Len returns the number of entries.
func (o *Ordered[V]) Len() int {
	if o == nil {
		return 0
	}

	return len(o.entries)
}

// Get returns the value stored at k.
func (o *Ordered[V]) Get(k Key) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}

	pos, ok := o.index[k]
	if !ok {
		var zero V
		return zero, false
	}

	return o.entries[pos].Value, true
}

// Lookup returns the value stored under the textual key name.
func (o *Ordered[V]) Lookup(name string) (V, bool) {
	return o.Get(ParseKey(name))
}

// Has reports whether k is present.
func (o *Ordered[V]) Has(k Key) bool {
	if o == nil {
		return false
	}

	_, ok := o.index[k]
	return ok
}

// Set stores v at k, overwriting any existing value in place.
func (o *Ordered[V]) Set(k Key, v V) {
	if o.index == nil {
		o.index = make(map[Key]int)
	}

	if pos, ok := o.index[k]; ok {
		o.entries[pos].Value = v
		return
	}

	o.index[k] = len(o.entries)
	o.entries = append(o.entries, Entry[V]{Key: k, Value: v})

	if i, ok := k.Int(); ok && i >= o.next {
		o.next = i + 1
	}
}

// SetField stores v under the textual key name.
func (o *Ordered[V]) SetField(name string, v V) {
	o.Set(ParseKey(name), v)
}

// Append stores v at the next free integer key and returns that key.
func (o *Ordered[V]) Append(v V) Key {
	k := Int(o.NextIndex())
	o.Set(k, v)

	return k
}

// NextIndex returns the key the next Append will use.
func (o *Ordered[V]) NextIndex() int {
	if o == nil {
		return 0
	}

	return o.next
}

// Delete removes k and reports whether it was present.
func (o *Ordered[V]) Delete(k Key) bool {
	if o == nil {
		return false
	}

	pos, ok := o.index[k]
	if !ok {
		return false
	}

	o.entries = append(o.entries[:pos], o.entries[pos+1:]...)
	delete(o.index, k)

	for i := pos; i < len(o.entries); i++ {
		o.index[o.entries[i].Key] = i
	}

	if i, ok := k.Int(); ok && i+1 == o.next {
		o.next = 0
		for _, e := range o.entries {
			if j, ok := e.Key.Int(); ok && j >= o.next {
				o.next = j + 1
			}
		}
	}

	return true
}

// Keys returns the keys in order.
func (o *Ordered[V]) Keys() []Key {
	if o == nil {
		return nil
	}

	keys := make([]Key, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}

	return keys
}

// Values returns the values in order.
func (o *Ordered[V]) Values() []V {
	if o == nil {
		return nil
	}

	values := make([]V, len(o.entries))
	for i, e := range o.entries {
		values[i] = e.Value
	}

	return values
}

// Entries returns a copy of the entries in order.
func (o *Ordered[V]) Entries() []Entry[V] {
	if o == nil {
		return nil
	}

	out := make([]Entry[V], len(o.entries))
	copy(out, o.entries)

	return out
}

// All iterates over the entries in order.
func (o *Ordered[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		if o == nil {
			return
		}

		for _, e := range o.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// IsList reports whether the keys are exactly 0..Len()-1 in order.
func (o *Ordered[V]) IsList() bool {
	if o == nil {
		return true
	}

	for i, e := range o.entries {
		if j, ok := e.Key.Int(); !ok || j != i {
			return false
		}
	}

	return true
}
