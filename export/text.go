package export

import (
	"value-objects/codec"
)

// ToJSON returns the JSON text of e.
func ToJSON(e Exportable) ([]byte, error) {
	t, err := e.ToTree()
	if err != nil {
		return nil, err
	}

	return codec.EncodeJSON(t)
}

// FromJSON replaces the data in e with the JSON document data.
func FromJSON(e Exportable, data []byte) error {
	t, err := codec.DecodeJSON(data)
	if err != nil {
		return err
	}

	return e.FromTree(t)
}

// ToYAML returns the YAML text of e.
func ToYAML(e Exportable) ([]byte, error) {
	t, err := e.ToTree()
	if err != nil {
		return nil, err
	}

	return codec.EncodeYAML(t)
}

// FromYAML replaces the data in e with the YAML document data.
func FromYAML(e Exportable, data []byte) error {
	t, err := codec.DecodeYAML(data)
	if err != nil {
		return err
	}

	return e.FromTree(t)
}
