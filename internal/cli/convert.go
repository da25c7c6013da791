package cli

import (
	"github.com/spf13/cobra"

	"value-objects/internal/common"
)

type convertOptions struct {
	from  string
	to    string
	types []string
}

func newConvertCommand(global *globalOptions) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a document between JSON and YAML",
		Long: `Convert decodes a JSON or YAML document and encodes it again, keeping
the key order. With --type every top-level element is coerced to the first
applicable type of the list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := common.First(args)
			return runConvert(cmd, global, &opts, path)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Input format: json or yaml (default from the file extension)")
	cmd.Flags().StringVar(&opts.to, "to", formatJSON, "Output format: json or yaml")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "Declared element types, tried in order")

	return cmd
}

func runConvert(cmd *cobra.Command, global *globalOptions, opts *convertOptions, path string) error {
	from, err := formatOf(opts.from, path)
	if err != nil {
		return err
	}

	to, err := parseFormat(opts.to)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, path, from)
	if err != nil {
		return err
	}

	if types := common.Compact(opts.types); len(types) > 0 {
		col, err := typedCollection(doc, types, global.coercer(cmd))
		if err != nil {
			return err
		}

		if doc, err = col.ToTree(); err != nil {
			return err
		}
	}

	return writeDocument(cmd, doc, to)
}
