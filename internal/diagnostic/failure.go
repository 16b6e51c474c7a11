package diagnostic

import (
	"fmt"

	"matches/internal/common"
)

// Kind tells which entry point a failure came from.
type Kind int

const (
	KindAssert Kind = iota
	KindUnwrap
)

// String returns the entry point name.
func (k Kind) String() string {
	switch k {
	case KindAssert:
		return "assert"
	case KindUnwrap:
		return "unwrap"
	default:
		return common.UnknownStr
	}
}

// Diagnostic describes a failed assertion or unwrap.
type Diagnostic struct {
	Kind Kind
	// Pattern is the canonical pattern text.
	Pattern string
	// Value is the rendered value.
	Value string
	// Message is the text shown to the user.
	Message string
	// Detail is an optional multi-line dump of the value.
	Detail string
}

// Format builds the diagnostic for a failure. With a custom message its
// expansion replaces the default text entirely; debug renders its "{:?}"
// slots.
func Format(kind Kind, patternText, valueText string, custom *Message, debug func(any) string) Diagnostic {
	d := Diagnostic{Kind: kind, Pattern: patternText, Value: valueText}

	if custom != nil {
		d.Message = custom.Format(debug)
		return d
	}

	switch kind {
	case KindUnwrap:
		d.Message = fmt.Sprintf("called unwrap on a non-matching pattern: value `%s` does not match `%s`",
			valueText, patternText)
	default:
		d.Message = fmt.Sprintf("assertion failed: `%s` does not match `%s`", patternText, valueText)
	}

	return d
}

// String returns the message followed by the detail, if any.
func (d Diagnostic) String() string {
	if d.Detail == "" {
		return d.Message
	}

	return d.Message + "\n" + d.Detail
}
