package analyze

import (
	"value-objects/tree"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "value-objects/record"
	Name    string // e.g., "Team"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Field describes one tree field of a record type.
type Field struct {
	Name     string // tree name
	Path     string // Go selector path, e.g. "Audit.CreatedBy"
	Type     string // declared tree type, e.g. "integer" or "sequence<string>"
	Nullable bool   // pointer or nil-able field
}

// Layout lists the tree fields of a record type in export order.
type Layout struct {
	ID     TypeID
	Fields []Field
}

// Field returns the field with the given tree name.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// ToTree renders the layout as a mapping from tree name to field details.
func (l *Layout) ToTree() (any, error) {
	out := tree.NewOrdered[any](len(l.Fields))
	for _, f := range l.Fields {
		details := tree.NewMap()
		details.SetField("go", f.Path)
		details.SetField("type", f.Type)
		details.SetField("nullable", f.Nullable)

		out.SetField(f.Name, details)
	}

	return out, nil
}
