package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"value-objects/coerce"
	"value-objects/internal/diagnostic"
	"value-objects/tree"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	okColor    = color.New(color.FgGreen)
	typeColor  = color.New(color.FgCyan)
	dimColor   = color.New(color.FgHiBlack)
	warnColor  = color.New(color.FgYellow)
)

// PrintError prints an error message to w.
func PrintError(w io.Writer, err error) {
	_, _ = errorColor.Fprintf(w, "✗ %v\n", err)
}

func eventLogger(w io.Writer) coerce.Logger {
	return coerce.LoggerFunc(func(e coerce.Event) {
		if e.Err != nil {
			_, _ = errorColor.Fprint(w, "✗ ")
			_, _ = fmt.Fprintf(w, "%s ", describe(e.Value))
			_, _ = typeColor.Fprint(w, e.Type)
			_, _ = dimColor.Fprintf(w, " %v\n", e.Err)
			return
		}

		_, _ = okColor.Fprint(w, "✓ ")
		_, _ = fmt.Fprintf(w, "%s -> ", describe(e.Value))
		_, _ = typeColor.Fprint(w, e.Type)
		_, _ = dimColor.Fprintf(w, " %s\n", describe(e.Result))
	})
}

func describe(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case float64:
		s := tree.FormatFloat(val)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	case bool, int:
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("%T", v)
	}
}

func severityColor(s diagnostic.Severity) *color.Color {
	switch s {
	case diagnostic.SeverityError:
		return errorColor
	case diagnostic.SeverityWarning:
		return warnColor
	default:
		return dimColor
	}
}
