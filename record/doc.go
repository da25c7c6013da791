// Package record exports and imports plain Go structs as trees.
//
// A record is any struct reached through a pointer. Its exported fields are
// the tree entries, named by the `tree` struct tag or the Go field name:
//
//	type Employee struct {
//		Name     string    `tree:"name"`
//		HireDate *HireDate `tree:"hire_date"`
//		Salary   *int      `tree:"salary"` // nullable
//		internal string                   // skipped
//		Notes    string    `tree:"-"`      // skipped
//	}
//
//	func (e *Employee) ToTree() (any, error)    { return record.ToTree(e) }
//	func (e *Employee) FromTree(data any) error { return record.FromTree(e, data) }
//
// Embedded structs without a tag are flattened into the outer record.
// Fields holding another Exportable are exported and imported through it.
// A record that needs to customize its export calls Snapshot, adjusts the
// raw entries, and finishes with Export.
package record
