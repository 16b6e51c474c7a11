package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnusedMessage, "message is never shown", "c1", "message")
	d.AddInfo("note", "just saying", "", "")
	assert.True(t, d.IsValid())

	d.AddError(CodePatternInvalid, "unexpected )", "c2", "pattern")
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[c2] pattern: [pattern_invalid] unexpected )", err.Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeMissingName, "case has no name", "", "name")
	b.AddError(CodeDuplicateName, "duplicate", "x", "name")
	b.AddWarning(CodeBindWithoutHit, "bind ignored", "x", "bind")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{"bare", Issue{Message: "boom"}, "boom"},
		{"code", Issue{Code: "c", Message: "boom"}, "[c] boom"},
		{"case and field", Issue{Case: "k", Field: "f", Message: "boom"}, "[k] f: boom"},
		{
			"suggestions",
			Issue{Code: CodeUnknownExpect, Message: `unknown expect "mach"`, Suggestions: []string{"match", "nomatch"}},
			`[unknown_expect] unknown expect "mach" (did you mean "match" or "nomatch"?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
