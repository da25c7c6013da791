package cli

import (
	"github.com/spf13/cobra"

	"value-objects/coerce"
	"value-objects/primitive"
)

type globalOptions struct {
	verbose bool
	strict  bool
}

// NewRootCommand returns the vo command tree.
func NewRootCommand(version string) *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:     "vo",
		Version: version,
		Short:   "Coerce, convert and merge typed value documents",
		Long: `vo converts JSON and YAML documents while coercing their values to
declared types, merges documents the way typed collections do, checks
documents element by element and prints the tree layout of record types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every coercion to stderr")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Only allow lossless number and sequence conversions")

	root.AddCommand(newConvertCommand(&opts))
	root.AddCommand(newMergeCommand(&opts))
	root.AddCommand(newCheckCommand(&opts))
	root.AddCommand(newLayoutCommand())

	return root
}

// Execute runs the vo command tree.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

func (o *globalOptions) coercer(cmd *cobra.Command) *coerce.Coercer {
	var opts []coerce.Option

	if o.strict {
		opts = append(opts, coerce.WithCategories(primitive.CategorySafeNumber|primitive.CategorySequenceCopy))
	}

	if o.verbose {
		opts = append(opts, coerce.WithLogger(eventLogger(cmd.ErrOrStderr())))
	}

	return coerce.New(opts...)
}
