package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"value-objects/coerce"
	"value-objects/collection"
	"value-objects/internal/common"
	"value-objects/internal/diagnostic"
	"value-objects/primitive"
)

type checkOptions struct {
	from  string
	types []string
	quiet bool
}

var suggestionTypes = []coerce.Type{coerce.Bool, coerce.Int, coerce.Float, coerce.String, coerce.Sequence}

func newCheckCommand(global *globalOptions) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check --type names [file]",
		Short: "Report the elements of a document that do not coerce",
		Long: `Check coerces every top-level element of a document on its own and
reports each element no declared type accepts, together with the primitive
types that would accept it. The command fails when any element is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := common.First(args)
			return runCheck(cmd, global, &opts, path)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Input format: json or yaml (default from the file extension)")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "Declared element types, tried in order")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print errors and the summary")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runCheck(cmd *cobra.Command, global *globalOptions, opts *checkOptions, path string) error {
	from, err := formatOf(opts.from, path)
	if err != nil {
		return err
	}

	types, err := coerce.NewRegistry().Resolve(common.Compact(opts.types)...)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, path, from)
	if err != nil {
		return err
	}

	elements := collection.New[any]()
	if err := elements.Exchange(doc); err != nil {
		return err
	}

	coercer := global.coercer(cmd)
	report := checkElements(elements, types, coercer)

	printReport(cmd.OutOrStdout(), &report, opts.quiet)
	_, _ = dimColor.Fprintln(cmd.OutOrStdout(), report.Summary(elements.Len()))

	return report.Error()
}

func checkElements(elements *collection.Collection[any], types []coerce.Type, c *coerce.Coercer) diagnostic.Report {
	var report diagnostic.Report

	quiet := coerce.New(coerce.WithCategories(c.Categories()))

	for k, v := range elements.All() {
		path := k.String()

		if v == nil {
			report.AddWarning("null", "null passes every declared type", path)
			continue
		}

		coerced, err := c.Coerce(v, types...)
		if err != nil {
			report.AddError("mismatch", err.Error(), path, accepting(quiet, v)...)
			continue
		}

		if primitive.FromValue(coerced) != primitive.FromValue(v) {
			report.AddInfo("coerced", fmt.Sprintf("%s -> %s", describe(v), describe(coerced)), path)
		}
	}

	return report
}

// accepting lists the primitive types v coerces to.
func accepting(c *coerce.Coercer, v any) []string {
	var names []string
	for _, t := range suggestionTypes {
		if _, err := c.Coerce(v, t); err == nil {
			names = append(names, t.Name())
		}
	}

	return names
}

func printReport(w io.Writer, report *diagnostic.Report, quiet bool) {
	for _, issue := range report.Issues() {
		if quiet && issue.Severity != diagnostic.SeverityError {
			continue
		}

		_, _ = severityColor(issue.Severity).Fprintf(w, "%-7s ", issue.Severity)
		_, _ = fmt.Fprintln(w, issue.String())
	}
}
