package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"
)

var (
	ErrTypeNotFound = errors.New("type not found")
	ErrNotStruct    = errors.New("type is not a struct")
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Loader loads Go packages and derives record layouts from them.
type Loader struct {
	dir  string
	pkgs map[string]*packages.Package
}

// NewLoader creates a Loader resolving relative patterns against dir. An
// empty dir means the current directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:  dir,
		pkgs: make(map[string]*packages.Package),
	}
}

// Load loads the package matched by pattern, a single package pattern such
// as "./record" or "value-objects/record".
func (l *Loader) Load(pattern string) (*packages.Package, error) {
	if pkg, ok := l.pkgs[pattern]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, expected one", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	l.pkgs[pattern] = pkg

	return pkg, nil
}

// Layout loads the package matched by pattern and returns the layout of
// its struct type name.
func (l *Loader) Layout(pattern, name string) (*Layout, error) {
	pkg, err := l.Load(pattern)
	if err != nil {
		return nil, err
	}

	id := TypeID{PkgPath: pkg.PkgPath, Name: name}

	typeName, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	st, ok := typeName.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, id)
	}

	qualifier := func(p *types.Package) string {
		return p.Name()
	}

	return &Layout{ID: id, Fields: fieldsOf(st, qualifier)}, nil
}

type candidate struct {
	Field
	depth int
}

// fieldsOf lists the tree fields of st in declaration order. A name
// declared at a shallower depth hides deeper ones.
func fieldsOf(st *types.Struct, qualifier types.Qualifier) []Field {
	all := collectFields(st, "", 0, qualifier)

	shallowest := make(map[string]int, len(all))
	for _, f := range all {
		if d, ok := shallowest[f.Name]; !ok || f.depth < d {
			shallowest[f.Name] = f.depth
		}
	}

	res := make([]Field, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, f := range all {
		if f.depth != shallowest[f.Name] || seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		res = append(res, f.Field)
	}

	return res
}

func collectFields(st *types.Struct, prefix string, depth int, qualifier types.Qualifier) []candidate {
	var res []candidate

	for i := range st.NumFields() {
		v := st.Field(i)

		name, _, _ := strings.Cut(reflect.StructTag(st.Tag(i)).Get("tree"), ",")
		if name == "-" {
			continue
		}

		path := prefix + v.Name()

		if embedded, ok := v.Type().Underlying().(*types.Struct); ok && v.Embedded() && name == "" {
			res = append(res, collectFields(embedded, path+".", depth+1, qualifier)...)
			continue
		}

		if !v.Exported() {
			continue
		}

		if name == "" {
			name = v.Name()
		}

		typ, nullable := describeField(v.Type(), qualifier)

		res = append(res, candidate{
			Field: Field{Name: name, Path: path, Type: typ, Nullable: nullable},
			depth: depth,
		})
	}

	return res
}

func describeField(t types.Type, qualifier types.Qualifier) (string, bool) {
	switch u := t.Underlying().(type) {
	case *types.Pointer:
		return describe(u.Elem(), qualifier), true
	case *types.Slice, *types.Map, *types.Interface:
		return describe(t, qualifier), true
	}

	return describe(t, qualifier), false
}

// describe names the tree type a field of type t accepts, following the
// conversions package record applies.
func describe(t types.Type, qualifier types.Qualifier) string {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		info := u.Info()
		switch {
		case info&types.IsBoolean != 0:
			return "boolean"
		case info&types.IsInteger != 0:
			return "integer"
		case info&types.IsFloat != 0:
			return "float"
		case info&types.IsString != 0:
			return "string"
		}

	case *types.Pointer:
		return describe(u.Elem(), qualifier)

	case *types.Struct:
		if isExportable(t) {
			return "object " + types.TypeString(t, qualifier)
		}

	case *types.Slice:
		return "sequence" + elemOf(u.Elem(), qualifier)

	case *types.Array:
		return "sequence" + elemOf(u.Elem(), qualifier)

	case *types.Map:
		if key, ok := u.Key().Underlying().(*types.Basic); ok && key.Info()&(types.IsInteger|types.IsString) != 0 {
			return "mapping" + elemOf(u.Elem(), qualifier)
		}

	case *types.Interface:
		return "any"
	}

	return "unsupported " + types.TypeString(t, qualifier)
}

func elemOf(t types.Type, qualifier types.Qualifier) string {
	if i, ok := t.Underlying().(*types.Interface); ok && i.Empty() {
		return ""
	}

	return "<" + describe(t, qualifier) + ">"
}

// isExportable reports whether *t has both ToTree and FromTree methods.
func isExportable(t types.Type) bool {
	methods := types.NewMethodSet(types.NewPointer(t))

	return methods.Lookup(nil, "ToTree") != nil && methods.Lookup(nil, "FromTree") != nil
}
