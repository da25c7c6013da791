package collection

import (
	"gopkg.in/yaml.v3"

	"value-objects/codec"
)

func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	t, err := c.ToTree()
	if err != nil {
		return nil, err
	}

	return codec.EncodeJSON(t)
}

// UnmarshalJSON replaces the content with the decoded document, see
// Exchange.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	t, err := codec.DecodeJSON(data)
	if err != nil {
		return err
	}

	return c.Exchange(t)
}

func (c *Collection[T]) MarshalYAML() (any, error) {
	t, err := c.ToTree()
	if err != nil {
		return nil, err
	}

	return codec.YAMLNode(t)
}

// UnmarshalYAML replaces the content with the decoded node, see Exchange.
func (c *Collection[T]) UnmarshalYAML(node *yaml.Node) error {
	t, err := codec.FromYAMLNode(node)
	if err != nil {
		return err
	}

	return c.Exchange(t)
}
