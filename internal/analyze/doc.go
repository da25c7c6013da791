// Package analyze derives the tree layout of record types from source.
//
// It uses golang.org/x/tools/go/packages with go/types to load a package
// and reads the fields of a struct type the way package record does at run
// time: tree tags, skipped and unexported fields, flattened embedded
// structs and shadowing by depth.
//
// Key types:
//   - TypeID: package import path + type name
//   - Layout: the ordered tree fields of a record type
//   - Field: tree name, Go selector path and declared tree type
package analyze
