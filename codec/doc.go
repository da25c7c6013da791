// Package codec converts tree values to and from JSON and YAML text.
//
// Both codecs keep mapping keys in their tree order. A mapping whose keys
// are exactly 0..n-1 in order is written as a sequence, so list-shaped
// collections come out as arrays. Decoding turns integer literals into int,
// other numbers into float64, objects into *tree.Map and arrays into []any.
//
// JSON output is compact and stable: decoding and re-encoding text this
// package produced yields the same bytes.
package codec
