package cli

import (
	"github.com/spf13/cobra"

	"value-objects/internal/analyze"
)

type layoutOptions struct {
	to  string
	dir string
}

func newLayoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout <package> <Type>",
		Short: "Print the tree layout of a record type",
		Long: `Layout loads a Go package and prints the tree fields of a struct type in
export order: the tree name, the Go field path, the declared tree type and
whether the field accepts null.`,
		Example: `  vo layout ./internal/model Order
  vo layout --to yaml value-objects/internal/analyze/testdata/roster Member`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", formatJSON, "Output format: json or yaml")
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Directory to resolve the package pattern from")

	return cmd
}

func runLayout(cmd *cobra.Command, opts *layoutOptions, pattern, name string) error {
	to, err := parseFormat(opts.to)
	if err != nil {
		return err
	}

	layout, err := analyze.NewLoader(opts.dir).Layout(pattern, name)
	if err != nil {
		return err
	}

	doc, err := layout.ToTree()
	if err != nil {
		return err
	}

	return writeDocument(cmd, doc, to)
}
