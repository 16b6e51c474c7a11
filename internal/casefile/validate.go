package casefile

import (
	"fmt"
	"slices"

	"matches"
	"matches/internal/common"
	"matches/internal/diagnostic"
	"matches/internal/match"
)

// Validate checks a parsed case file. Patterns are compiled so that syntax
// errors surface here rather than as failing cases, except in cases that
// expect an error.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "case file is nil", "", "")
		return res
	}

	if f.Settings.MaxDepth < 0 {
		res.AddError(diagnostic.CodeSettingsInvalid,
			fmt.Sprintf("max_depth must not be negative, got %d", f.Settings.MaxDepth), "", "settings.max_depth")
	}

	if common.IsEmpty(f.Cases) {
		res.AddWarning(diagnostic.CodeNoCases, "file has no cases", "", "cases")
	}

	seen := map[string]struct{}{}

	for i := range f.Cases {
		c := &f.Cases[i]

		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			res.AddError(diagnostic.CodeMissingName, "case has no name", name, "name")
		} else if _, ok := seen[name]; ok {
			res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate case name %q", name), name, "name")
		}

		seen[name] = struct{}{}

		validateCase(res, name, c)
	}

	return res
}

func validateCase(res *diagnostic.Diagnostics, name string, c *Case) {
	validateEnum(res, name, "mode", string(c.Mode), Modes)
	validateEnum(res, name, "expect", string(c.Expect), Outcomes)

	if c.Pattern == "" {
		res.AddError(diagnostic.CodeMissingPattern, "case has no pattern", name, "pattern")
	} else if _, err := matches.Compile(c.Pattern); err != nil && c.Expect != OutcomeError {
		res.AddError(diagnostic.CodePatternInvalid, err.Error(), name, "pattern")
	}

	if len(c.Bind) > 0 && c.Expect != OutcomeMatch {
		res.AddWarning(diagnostic.CodeBindWithoutHit,
			fmt.Sprintf("bind is only checked when expect is %q", OutcomeMatch), name, "bind")
	}

	showsMessage := c.Mode != ModeOptional && c.Expect == OutcomeNoMatch

	if len(c.Message) > 0 && !showsMessage {
		res.AddWarning(diagnostic.CodeUnusedMessage, "message is never shown for this case", name, "message")
	}

	if (c.Diagnostic != "" || len(c.Contains) > 0) && !showsMessage {
		res.AddWarning(diagnostic.CodeUnusedMessage, "no failure message is produced for this case", name, "diagnostic")
	}
}

func validateEnum(res *diagnostic.Diagnostics, name, field, value string, valid []string) {
	if slices.Contains(valid, value) {
		return
	}

	res.Errors = append(res.Errors, diagnostic.Issue{
		Severity:    diagnostic.SeverityError,
		Code:        unknownCode(field),
		Message:     fmt.Sprintf("unknown %s %q", field, value),
		Case:        name,
		Field:       field,
		Suggestions: suggestions(value, valid),
	})
}

func unknownCode(field string) string {
	if field == "expect" {
		return diagnostic.CodeUnknownExpect
	}

	return diagnostic.CodeUnknownMode
}

func suggestions(value string, valid []string) []string {
	var out []string

	for _, c := range match.RankCandidates(value, valid) {
		if c.Score >= match.DefaultMinSimilarity {
			out = append(out, c.Name)
		}
	}

	return out
}
