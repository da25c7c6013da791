// Package builder creates typed objects from loosely shaped input mappings.
//
// A Builder wraps a create function. Inside it, SetValue copies a value into
// an object field from the first of several candidate input keys, which
// lets one builder accept inputs whose field names differ:
//
//	b := builder.New(func(b *builder.Builder[*Person], data *tree.Map) (*Person, error) {
//		p := &Person{}
//		err := b.SetValue(p, "name", data, []string{"full_name", "display_name"}, true)
//		return p, err
//	})
//
//	p, err := b.Build(map[string]any{"display_name": "Ada"})
package builder
