package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Empty(t *testing.T) {
	var r Report

	assert.False(t, r.HasErrors())
	assert.NoError(t, r.Error())
	assert.Empty(t, r.Issues())
	assert.Equal(t, "0 checked, 0 errors, 0 warnings", r.Summary(0))
}

func TestReport_Error(t *testing.T) {
	var r Report
	r.AddInfo("coerced", `"1" -> integer 1`, "0")
	r.AddError("mismatch", "only accepts values that are of type integer, string given", "1", "string")
	r.AddWarning("null", "null passes every type", "2")
	r.AddError("mismatch", "only accepts values that are of type integer, sequence given", "foo")

	require.True(t, r.HasErrors())

	err := r.Error()
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.EqualError(t, err, "check failed: "+
		"1: [mismatch] only accepts values that are of type integer, string given (accepted by string); "+
		"foo: [mismatch] only accepts values that are of type integer, sequence given")

	issues := r.Issues()
	require.Len(t, issues, 4)
	assert.Equal(t, []Severity{SeverityError, SeverityError, SeverityWarning, SeverityInfo},
		[]Severity{issues[0].Severity, issues[1].Severity, issues[2].Severity, issues[3].Severity})
	assert.Equal(t, "4 checked, 2 errors, 1 warnings", r.Summary(4))
}

func TestReport_Merge(t *testing.T) {
	var a, b Report
	a.AddWarning("null", "null passes every type", "0")
	b.AddError("mismatch", "bad", "1")
	b.AddInfo("coerced", "ok", "2")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestIssue_String(t *testing.T) {
	tests := []struct {
		issue  Issue
		expect string
	}{
		{Issue{Message: "plain"}, "plain"},
		{Issue{Code: "null", Message: "m", Path: "a"}, "a: [null] m"},
		{Issue{Message: "m", Suggestions: []string{"float", "string"}}, "m (accepted by float, string)"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.issue.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}
