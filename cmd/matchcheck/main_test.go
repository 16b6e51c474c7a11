package main

import (
	"bytes"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     int
		contains []string
		excludes []string
	}{
		{
			name:     "all pass",
			args:     []string{"testdata/pass.yaml"},
			code:     exitOK,
			contains: []string{"PASS  testdata/pass.yaml  some", "PASS  testdata/pass.yaml  none", "2 cases, 0 failed"},
		},
		{
			name:     "verbose shows messages",
			args:     []string{"-v", "testdata/pass.yaml"},
			code:     exitOK,
			contains: []string{"assertion failed: `Some(_)` does not match `None`"},
		},
		{
			name:     "quiet hides passes",
			args:     []string{"-q", "testdata/pass.yaml"},
			code:     exitOK,
			contains: []string{"2 cases, 0 failed"},
			excludes: []string{"PASS"},
		},
		{
			name: "failure",
			args: []string{"-j", "2", "testdata/pass.yaml", "testdata/fail.yaml"},
			code: exitFailed,
			contains: []string{
				"FAIL  testdata/fail.yaml  wrong expectation: expected match, got nomatch",
				"assertion failed: `Case(x) if x < 10` does not match `Case(20)`",
				"3 cases, 1 failed",
			},
		},
		{
			name:     "invalid file",
			args:     []string{"testdata/invalid.yaml"},
			code:     exitFailed,
			contains: []string{"0 cases, 0 failed"},
		},
		{
			name:     "missing file",
			args:     []string{"testdata/missing.yaml", "testdata/pass.yaml"},
			code:     exitFailed,
			contains: []string{"2 cases, 0 failed"},
		},
		{name: "no files", args: nil, code: exitUsage},
		{name: "bad jobs", args: []string{"-j", "0", "x.yaml"}, code: exitUsage},
		{name: "verbose and quiet", args: []string{"-v", "-q", "x.yaml"}, code: exitUsage},
		{name: "unknown flag", args: []string{"-z", "x.yaml"}, code: exitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr, slogt.New(t))
			assert.Equal(t, tt.code, code, "stdout:\n%s\nstderr:\n%s", stdout.String(), stderr.String())

			for _, s := range tt.contains {
				assert.Contains(t, stdout.String(), s)
			}

			for _, s := range tt.excludes {
				assert.NotContains(t, stdout.String(), s)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), "shown")
}
