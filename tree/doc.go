// Package tree defines the plain nested data shape exchanged between typed
// objects and text codecs.
//
// A tree value is exactly one of:
//   - nil
//   - bool, int, float64, string
//   - []any: an ordered sequence of tree values
//   - *Map: an ordered mapping from Key to tree values
//
// Keys are either integers or strings. A canonical decimal string such as
// "8" is always an integer key, so {"8": x} and {8: x} address the same entry.
package tree
