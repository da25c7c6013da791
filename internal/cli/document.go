package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"value-objects/codec"
	"value-objects/coerce"
	"value-objects/collection"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func parseFormat(name string) (string, error) {
	switch strings.ToLower(name) {
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected json or yaml", name)
	}
}

// formatOf picks the format from the flag value, else from the file
// extension, defaulting to JSON.
func formatOf(flag, path string) (string, error) {
	if flag != "" {
		return parseFormat(flag)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatJSON, nil
	}
}

// readDocument decodes the file at path, or stdin when path is "" or "-".
func readDocument(cmd *cobra.Command, path, format string) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayName(path), err)
	}

	var doc any
	if format == formatYAML {
		doc, err = codec.DecodeYAML(data)
	} else {
		doc, err = codec.DecodeJSON(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}

	return doc, nil
}

func writeDocument(cmd *cobra.Command, doc any, format string) error {
	var (
		out []byte
		err error
	)

	if format == formatYAML {
		out, err = codec.EncodeYAML(doc)
	} else {
		out, err = codec.EncodeJSON(doc)
		out = append(out, '\n')
	}

	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}

	return path
}

// typedCollection loads doc into a collection declaring the named types.
func typedCollection(doc any, names []string, c *coerce.Coercer) (*collection.Collection[any], error) {
	types, err := coerce.NewRegistry().Resolve(names...)
	if err != nil {
		return nil, err
	}

	col := collection.New[any](collection.WithTypes(types...), collection.WithCoercer(c))
	if err := col.Exchange(doc); err != nil {
		return nil, err
	}

	return col, nil
}
