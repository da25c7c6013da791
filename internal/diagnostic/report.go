package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCheckFailed = errors.New("check failed")

// Report holds all issues found while checking a document.
type Report struct {
	Errors   []Issue
	Warnings []Issue
	Infos    []Issue
}

// Issue represents a single finding about one element.
type Issue struct {
	// Severity of the issue.
	Severity Severity
	// Code identifies the kind of issue, e.g. "mismatch" or "coerced".
	Code string
	// Message is the human-readable description.
	Message string
	// Path is the key of the element the issue relates to.
	Path string
	// Suggestions are alternatives that would resolve the issue.
	Suggestions []string
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// AddError adds an error issue.
func (r *Report) AddError(code, message, path string, suggestions ...string) {
	r.Errors = append(r.Errors, newIssue(SeverityError, code, message, path, suggestions))
}

// AddWarning adds a warning issue.
func (r *Report) AddWarning(code, message, path string, suggestions ...string) {
	r.Warnings = append(r.Warnings, newIssue(SeverityWarning, code, message, path, suggestions))
}

// AddInfo adds an info issue.
func (r *Report) AddInfo(code, message, path string) {
	r.Infos = append(r.Infos, newIssue(SeverityInfo, code, message, path, nil))
}

func newIssue(severity Severity, code, message, path string, suggestions []string) Issue {
	return Issue{
		Severity:    severity,
		Code:        code,
		Message:     message,
		Path:        path,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error issues.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Merge appends the issues of other to r.
func (r *Report) Merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Infos = append(r.Infos, other.Infos...)
}

// Issues returns every issue, errors first.
func (r *Report) Issues() []Issue {
	res := make([]Issue, 0, len(r.Errors)+len(r.Warnings)+len(r.Infos))
	res = append(res, r.Errors...)
	res = append(res, r.Warnings...)
	res = append(res, r.Infos...)

	return res
}

// Summary returns a one-line count of the issues.
func (r *Report) Summary(checked int) string {
	return fmt.Sprintf("%d checked, %d errors, %d warnings", checked, len(r.Errors), len(r.Warnings))
}

// Error returns a combined error from all error issues, or nil if there are
// none.
func (r *Report) Error() error {
	if !r.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.String())
	}

	return fmt.Errorf("%w: %s", ErrCheckFailed, strings.Join(parts, "; "))
}

// String returns a formatted issue string.
func (i Issue) String() string {
	msg := i.Message
	if i.Code != "" {
		msg = fmt.Sprintf("[%s] %s", i.Code, msg)
	}

	if len(i.Suggestions) > 0 {
		msg += " (accepted by " + strings.Join(i.Suggestions, ", ") + ")"
	}

	if i.Path != "" {
		return i.Path + ": " + msg
	}

	return msg
}
