package matches

import (
	"errors"

	"matches/internal/diagnostic"
	"matches/internal/match"
	"matches/internal/pattern"
)

var (
	// ErrNoMatch is wrapped by every *MatchError.
	ErrNoMatch = errors.New("value does not match pattern")
	// ErrInvalidPattern is wrapped by pattern syntax and binding errors.
	ErrInvalidPattern = pattern.ErrInvalid
	// ErrUnmatchable is returned when a pattern has to inspect a value that
	// exposes no shape, such as a func or a chan.
	ErrUnmatchable = match.ErrUnmatchable
	// ErrUnknownField is returned when a struct pattern or guard names a
	// field the value does not have.
	ErrUnknownField = match.ErrUnknownField
	// ErrArity is returned when a tuple pattern has the wrong number of fields.
	ErrArity = match.ErrArity
	// ErrGuard is returned when a guard cannot be evaluated to a boolean.
	ErrGuard = match.ErrGuard
)

// SyntaxError reports a malformed pattern.
type SyntaxError = pattern.SyntaxError

// BindingError reports alternatives that bind different names.
type BindingError = pattern.BindingError

// FieldError is an ErrUnknownField with a suggested replacement.
type FieldError = match.FieldError

// MatchError is raised by Assert and Unwrap, and returned by Check and
// TryUnwrap, when a value does not match.
type MatchError struct {
	// Kind is "assert" or "unwrap".
	Kind string
	// Pattern is the canonical pattern text.
	Pattern string
	// Value is the rendered value.
	Value string
	// Message is the failure message.
	Message string
	// Detail is a full dump of the value in verbose mode.
	Detail string
	// GuardFailed is set when an alternative matched but the guard was false.
	GuardFailed bool
}

func newMatchError(d diagnostic.Diagnostic, guardFailed bool) *MatchError {
	return &MatchError{
		Kind:        d.Kind.String(),
		Pattern:     d.Pattern,
		Value:       d.Value,
		Message:     d.Message,
		Detail:      d.Detail,
		GuardFailed: guardFailed,
	}
}

func (e *MatchError) Error() string {
	if e.Detail == "" {
		return e.Message
	}

	return e.Message + "\n" + e.Detail
}

func (e *MatchError) Unwrap() error { return ErrNoMatch }
