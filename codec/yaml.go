package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"value-objects/tree"
)

// EncodeYAML encodes a tree value as a block style YAML document indented
// with two spaces.
func EncodeYAML(v any) ([]byte, error) {
	node, err := YAMLNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// YAMLNode converts a tree value into a yaml.Node. Strings that would
// resolve to another type when written plainly are quoted by the encoder.
func YAMLNode(v any) (*yaml.Node, error) {
	plain, ok := tree.Plain(v)
	if !ok {
		return nil, fmt.Errorf("codec: encode yaml: %w: %T", ErrNotTree, v)
	}

	return buildNode(plain), nil
}

func buildNode(v any) *yaml.Node {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null")

	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val))

	case int:
		return scalarNode("!!int", strconv.Itoa(val))

	case float64:
		switch {
		case math.IsNaN(val):
			return scalarNode("!!float", ".nan")
		case math.IsInf(val, 1):
			return scalarNode("!!float", ".inf")
		case math.IsInf(val, -1):
			return scalarNode("!!float", "-.inf")
		}
		return scalarNode("!!float", floatLiteral(val))

	case string:
		return scalarNode("!!str", val)

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			node.Content = append(node.Content, buildNode(item))
		}
		return node

	case *tree.Map:
		if val.IsList() {
			return buildNode(val.Values())
		}

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, item := range val.All() {
			keyNode := scalarNode("!!str", k.String())
			if k.IsInt() {
				keyNode.Tag = "!!int"
			}
			node.Content = append(node.Content, keyNode, buildNode(item))
		}
		return node
	}

	// tree.Plain guarantees one of the cases above
	panic(fmt.Sprintf("codec: unexpected tree value %T", v))
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// DecodeYAML decodes a single YAML document into a tree value. An empty
// document decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	return FromYAMLNode(&doc)
}

// FromYAMLNode converts a yaml.Node into a tree value. Aliases are expanded
// and timestamps are kept as strings.
func FromYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return FromYAMLNode(node.Content[0])

	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := FromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil

	case yaml.MappingNode:
		m := tree.NewOrdered[any](len(node.Content) / 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := yamlKey(node.Content[i])
			if err != nil {
				return nil, err
			}

			item, err := FromYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, item)
		}
		return m, nil

	case yaml.ScalarNode:
		return yamlScalar(node)

	default:
		return nil, fmt.Errorf("codec: decode yaml: unsupported node kind %v at line %d", node.Kind, node.Line)
	}
}

func yamlKey(node *yaml.Node) (tree.Key, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	if node.Kind != yaml.ScalarNode {
		return tree.Key{}, fmt.Errorf("codec: decode yaml: mapping key at line %d is not a scalar", node.Line)
	}

	return tree.ParseKey(node.Value), nil
}

func yamlScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!str", "!!timestamp":
		return node.Value, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: line %d: %w", node.Line, err)
	}

	if s, ok := tree.Scalar(v); ok {
		return s, nil
	}

	// integers beyond the int range
	if f, ok := tree.ParseNumber(node.Value); ok {
		return f, nil
	}

	return node.Value, nil
}
