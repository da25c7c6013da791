package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"value-objects/tree"
)

var (
	ErrNotTree       = errors.New("value is not a plain tree")
	ErrTrailingData  = errors.New("trailing data after document")
	ErrNonFiniteJSON = errors.New("non-finite float cannot be encoded as JSON")
)

// EncodeJSON encodes a tree value as compact JSON.
func EncodeJSON(v any) ([]byte, error) {
	plain, ok := tree.Plain(v)
	if !ok {
		return nil, fmt.Errorf("codec: encode json: %w: %T", ErrNotTree, v)
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, plain); err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")

	case bool:
		buf.WriteString(strconv.FormatBool(val))

	case int:
		buf.WriteString(strconv.Itoa(val))

	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ErrNonFiniteJSON
		}
		buf.WriteString(floatLiteral(val))

	case string:
		return writeJSONString(buf, val)

	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case *tree.Map:
		if val.IsList() {
			return writeJSON(buf, val.Values())
		}

		buf.WriteByte('{')
		i := 0
		for k, item := range val.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++

			if err := writeJSONString(buf, k.String()); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	default:
		return fmt.Errorf("%w: %T", ErrNotTree, v)
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var quoted bytes.Buffer

	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}

	buf.Write(bytes.TrimSuffix(quoted.Bytes(), []byte("\n")))

	return nil
}

// floatLiteral keeps integral floats recognizable as floats, 1.0 stays 1.0.
func floatLiteral(f float64) string {
	s := tree.FormatFloat(f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// DecodeJSON decodes a single JSON document into a tree value.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("codec: decode json: %w", ErrTrailingData)
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			items := []any{}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return items, nil

		case '{':
			m := tree.NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}

				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.SetField(key, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil

		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}

	case json.Number:
		return numberValue(t)

	default:
		// string, bool or nil
		return t, nil
	}
}

func numberValue(n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
	}

	f, err := n.Float64()
	if err != nil {
		return nil, err
	}

	return f, nil
}
