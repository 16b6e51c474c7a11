package casefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matches"
	"matches/internal/diagnostic"
)

func TestParseValues(t *testing.T) {
	src := `
cases:
  - name: values
    value:
      - !None
      - !Some 3
      - !Some ""
      - !Pair [1, two]
      - !Point {X: 1, Y: 2.5}
      - {a: true}
      - ~
      - &anchor !Ok x
      - *anchor
    pattern: "_"
`

	f, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, f.Cases, 1)

	got, ok := f.Cases[0].Value.V.([]any)
	require.True(t, ok)
	require.Len(t, got, 9)

	assert.Equal(t, Tagged{Name: "None"}, got[0])
	assert.Equal(t, Tagged{Name: "Some", Values: []any{3}}, got[1])
	assert.Equal(t, Tagged{Name: "Some", Values: []any{""}}, got[2])
	assert.Equal(t, Tagged{Name: "Pair", Values: []any{1, "two"}}, got[3])
	assert.Equal(t, Tagged{Name: "Point", Keys: []string{"X", "Y"}, Values: []any{1, 2.5}}, got[4])
	assert.Equal(t, Record{Keys: []string{"a"}, Values: []any{true}}, got[5])
	assert.Nil(t, got[6])
	assert.Equal(t, Tagged{Name: "Ok", Values: []any{"x"}}, got[7])
	assert.Equal(t, got[7], got[8])
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse([]byte("cases:\n  - name: a\n    value: 1\n    pattern: \"1\"\n"))
	require.NoError(t, err)

	assert.Equal(t, matches.DefaultMaxDepth, f.Settings.MaxDepth)
	assert.Equal(t, ModeAssert, f.Cases[0].Mode)
	assert.Equal(t, OutcomeMatch, f.Cases[0].Expect)
}

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected Message
	}{
		{"string", `message: "plain"`, Message{"plain"}},
		{"positional", `message: ["v={}", 1]`, Message{"v={}", 1}},
		{"named", `message: ["{n}", {n: 2}]`, Message{"{n}", matches.Named{Name: "n", Value: 2}}},
		{"tagged argument", `message: ["{:?}", !Some 1]`, Message{"{:?}", Tagged{Name: "Some", Values: []any{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte("cases:\n  - name: a\n    pattern: _\n    " + tt.yaml + "\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Cases[0].Message)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "cases: ["},
		{"message template not string", "cases:\n  - message: [1, 2]\n"},
		{"message mapping", "cases:\n  - message: {a: 1}\n"},
		{"contains mapping", "cases:\n  - contains: {a: 1}\n"},
		{"complex key", "cases:\n  - value: {[1]: 2}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.ErrorContains(t, err, "failed to read case file")
}

func TestValidateBasic(t *testing.T) {
	f, err := LoadFile("testdata/basic.yaml")
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid(), "%v", res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidateInvalid(t *testing.T) {
	f, err := LoadFile("testdata/invalid.yaml")
	require.NoError(t, err)

	res := Validate(f)
	require.False(t, res.IsValid())

	codes := map[string]diagnostic.Issue{}
	for _, i := range res.All() {
		codes[i.Code] = i
	}

	assert.Contains(t, codes, diagnostic.CodeSettingsInvalid)
	assert.Contains(t, codes, diagnostic.CodeMissingName)
	assert.Contains(t, codes, diagnostic.CodeDuplicateName)
	assert.Contains(t, codes, diagnostic.CodePatternInvalid)
	assert.Contains(t, codes, diagnostic.CodeMissingPattern)
	assert.Contains(t, codes, diagnostic.CodeBindWithoutHit)

	assert.Equal(t, []string{"match", "nomatch"}, codes[diagnostic.CodeUnknownExpect].Suggestions)
	assert.Equal(t, []string{"optional"}, codes[diagnostic.CodeUnknownMode].Suggestions)
	assert.Equal(t, "#1", codes[diagnostic.CodeMissingName].Case)
}

func TestValidateNilAndEmpty(t *testing.T) {
	assert.True(t, Validate(nil).HasErrors())

	res := Validate(&File{})
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.CodeNoCases, res.Warnings[0].Code)
}

func TestRunBasic(t *testing.T) {
	f, err := LoadFile("testdata/basic.yaml")
	require.NoError(t, err)

	for _, v := range RunFile(f) {
		t.Run(v.Case, func(t *testing.T) {
			assert.True(t, v.Passed, v.Reason)
		})
	}
}

func TestRunReportsMismatches(t *testing.T) {
	src := `
cases:
  - name: wrong outcome
    value: !Some 1
    pattern: None
  - name: wrong binding
    value: !Some 1
    pattern: Some(x)
    bind: {x: 2}
  - name: missing binding
    value: !Some 1
    pattern: Some(_)
    bind: {x: 1}
  - name: wrong diagnostic
    value: !Some 1
    pattern: None
    expect: nomatch
    diagnostic: nope
  - name: unmatchable is an error
    value: !Some 1
    pattern: "Some(a, b)"
    mode: optional
`

	f, err := Parse([]byte(src))
	require.NoError(t, err)

	verdicts := RunFile(f)
	require.Len(t, verdicts, 5)

	for _, v := range verdicts {
		assert.False(t, v.Passed, v.Case)
		assert.NotEmpty(t, v.Reason, v.Case)
	}

	assert.Equal(t, OutcomeNoMatch, verdicts[0].Got)
	assert.Equal(t, "x bound to 1, expected 2", verdicts[1].Reason)
	assert.Equal(t, "x is not bound", verdicts[2].Reason)
	assert.Equal(t, OutcomeError, verdicts[4].Got)
	assert.ErrorIs(t, verdicts[4].Err, matches.ErrArity)
}

func TestRunUsesSettings(t *testing.T) {
	src := `
settings:
  verbose: true
cases:
  - name: verbose
    value: !Some [1]
    pattern: None
    expect: nomatch
    contains: ["does not match", "Some(1)", "\n"]
`

	f, err := Parse([]byte(src))
	require.NoError(t, err)

	v := Run(f, &f.Cases[0])
	assert.True(t, v.Passed, v.Reason)
}
