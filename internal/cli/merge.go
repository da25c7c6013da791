package cli

import (
	"github.com/spf13/cobra"

	"value-objects/internal/common"
)

type mergeOptions struct {
	from   string
	to     string
	types  []string
	unique bool
}

func newMergeCommand(global *globalOptions) *cobra.Command {
	var opts mergeOptions

	cmd := &cobra.Command{
		Use:   "merge <left> <right>",
		Short: "Merge the elements of right into left",
		Long: `Merge merges two documents element by element. Elements of right with a
string key replace the element of left with that key, the others are
appended. With --unique only elements not already present are added.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, global, &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Input format: json or yaml (default from the file extension)")
	cmd.Flags().StringVar(&opts.to, "to", formatJSON, "Output format: json or yaml")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "Declared element types, tried in order")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "Only add elements not loosely equal to an existing one")

	return cmd
}

func runMerge(cmd *cobra.Command, global *globalOptions, opts *mergeOptions, leftPath, rightPath string) error {
	to, err := parseFormat(opts.to)
	if err != nil {
		return err
	}

	coercer := global.coercer(cmd)
	types := common.Compact(opts.types)

	var sides [2]any
	for i, path := range []string{leftPath, rightPath} {
		from, err := formatOf(opts.from, path)
		if err != nil {
			return err
		}

		if sides[i], err = readDocument(cmd, path, from); err != nil {
			return err
		}
	}

	left, err := typedCollection(sides[0], types, coercer)
	if err != nil {
		return err
	}

	right, err := typedCollection(sides[1], types, coercer)
	if err != nil {
		return err
	}

	if opts.unique {
		err = left.MergeInUniqueData(right)
	} else {
		err = left.MergeIn(right)
	}

	if err != nil {
		return err
	}

	doc, err := left.ToTree()
	if err != nil {
		return err
	}

	return writeDocument(cmd, doc, to)
}
