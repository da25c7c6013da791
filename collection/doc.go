// Package collection provides Collection, an ordered keyed container whose
// elements are coerced to a declared type on every insertion.
//
// Keys are tree.Key values, integers or strings. Appending uses one past the
// largest non-negative integer key. The declared types default to the ones
// derived from the element type:
//
//	var ids collection.Collection[int]
//	_ = ids.Append("12") // stored as 12
//	err := ids.Append("foo") // coerce.ErrTypeMismatch
//
//	people := collection.New[*Person]()
//	err = people.Exchange([]any{map[string]any{"name": "A"}})
//
// A Collection is itself export.Exportable and encodes to JSON and YAML.
package collection
