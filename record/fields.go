package record

import (
	"reflect"
	"strings"
)

type field struct {
	name   string
	goName string
	index  []int
	depth  int
}

// fieldsOf lists the tree fields of the struct type rt in declaration
// order. A name declared at a shallower depth hides deeper ones.
func fieldsOf(rt reflect.Type) []field {
	all := collectFields(rt, nil, 0)

	shallowest := make(map[string]int, len(all))
	for _, f := range all {
		if d, ok := shallowest[f.name]; !ok || f.depth < d {
			shallowest[f.name] = f.depth
		}
	}

	res := make([]field, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, f := range all {
		if f.depth != shallowest[f.name] || seen[f.name] {
			continue
		}
		seen[f.name] = true
		res = append(res, f)
	}

	return res
}

func collectFields(rt reflect.Type, prefix []int, depth int) []field {
	var res []field

	for i := range rt.NumField() {
		sf := rt.Field(i)

		name, _, _ := strings.Cut(sf.Tag.Get("tree"), ",")
		if name == "-" {
			continue
		}

		index := append(append([]int(nil), prefix...), i)

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			res = append(res, collectFields(sf.Type, index, depth+1)...)
			continue
		}

		if !sf.IsExported() {
			continue
		}

		if name == "" {
			name = sf.Name
		}

		res = append(res, field{name: name, goName: sf.Name, index: index, depth: depth})
	}

	return res
}

func lookupField(fields []field, name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}

	for _, f := range fields {
		if f.goName == name {
			return f, true
		}
	}

	return field{}, false
}
