package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"matches/internal/common"
)

// Diagnostics collects the issues found while validating a case file.
type Diagnostics struct {
	Errors   []Issue
	Warnings []Issue
	Infos    []Issue
}

// Issue is a single coded validation message.
type Issue struct {
	// Severity of the issue.
	Severity Severity
	// Code is a stable identifier for this kind of issue.
	Code string
	// Message is the human-readable description.
	Message string
	// Case names the case the issue relates to (if any).
	Case string
	// Field names the case field the issue relates to (if any).
	Field string
	// Suggestions are potential fixes.
	Suggestions []string
}

// Issue codes reported by case-file validation.
const (
	CodeMissingName     = "missing_name"
	CodeDuplicateName   = "duplicate_name"
	CodeUnknownExpect   = "unknown_expect"
	CodeUnknownMode     = "unknown_mode"
	CodePatternInvalid  = "pattern_invalid"
	CodeMissingPattern  = "missing_pattern"
	CodeBindWithoutHit  = "bind_without_match"
	CodeUnusedMessage   = "unused_message"
	CodeNoCases         = "no_cases"
	CodeSettingsInvalid = "settings_invalid"
)

// Severity is the severity level of an Issue.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error issue.
func (d *Diagnostics) AddError(code, message, caseName, field string) {
	d.Errors = append(d.Errors, Issue{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Case:     caseName,
		Field:    field,
	})
}

// AddWarning adds a warning issue.
func (d *Diagnostics) AddWarning(code, message, caseName, field string) {
	d.Warnings = append(d.Warnings, Issue{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Case:     caseName,
		Field:    field,
	})
}

// AddInfo adds an info issue.
func (d *Diagnostics) AddInfo(code, message, caseName, field string) {
	d.Infos = append(d.Infos, Issue{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Case:     caseName,
		Field:    field,
	})
}

// HasErrors returns true if there are any error issues.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every issue, errors first.
func (d *Diagnostics) All() []Issue {
	return common.Concat(d.Errors, d.Warnings, d.Infos)
}

// Error returns a combined error from all error issues, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := common.Map(d.Errors, Issue.String)

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted issue string.
func (i Issue) String() string {
	var prefix []string
	if i.Case != "" {
		prefix = append(prefix, "["+i.Case+"]")
	}

	if i.Field != "" {
		prefix = append(prefix, i.Field)
	}

	msg := i.Message
	if i.Code != "" {
		msg = fmt.Sprintf("[%s] %s", i.Code, msg)
	}

	if len(i.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(common.Map(i.Suggestions, quote), " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
