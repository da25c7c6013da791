// Package export defines the Exportable capability shared by records and
// collections, and the recursive walk that turns an object graph into a
// plain tree.
//
// Exportable types convert themselves to and from tree values. Text forms
// are layered on top through ToJSON, FromJSON, ToYAML and FromYAML, which
// delegate to package codec.
package export
