package casefile

import (
	"matches"
)

// File is the root of a case file.
type File struct {
	// Settings configures failure rendering for every case.
	Settings matches.Config `yaml:"settings,omitempty"`

	// Cases are run in order.
	Cases []Case `yaml:"cases"`
}

// Case is one value tested against one pattern.
type Case struct {
	// Name identifies the case in reports.
	Name string `yaml:"name"`

	// Value is the value under test.
	Value Value `yaml:"value"`

	// Pattern is the pattern source.
	Pattern string `yaml:"pattern"`

	// Mode selects the entry point; defaults to assert.
	Mode Mode `yaml:"mode,omitempty"`

	// Expect is the expected outcome; defaults to match.
	Expect Outcome `yaml:"expect,omitempty"`

	// Bind lists expected bindings on a match.
	Bind map[string]Value `yaml:"bind,omitempty"`

	// Message is the custom failure message template and arguments.
	Message Message `yaml:"message,omitempty"`

	// Diagnostic is the exact expected failure message.
	Diagnostic string `yaml:"diagnostic,omitempty"`

	// Contains lists substrings the failure message must contain.
	Contains StringOrArray `yaml:"contains,omitempty"`
}

// Mode is the entry point a case goes through.
type Mode string

const (
	ModeAssert   Mode = "assert"
	ModeUnwrap   Mode = "unwrap"
	ModeOptional Mode = "optional"
)

// Modes lists the valid modes.
var Modes = []string{string(ModeAssert), string(ModeUnwrap), string(ModeOptional)}

// Outcome is the result of running a case.
type Outcome string

const (
	OutcomeMatch   Outcome = "match"
	OutcomeNoMatch Outcome = "nomatch"
	OutcomeError   Outcome = "error"
)

// Outcomes lists the valid outcomes.
var Outcomes = []string{string(OutcomeMatch), string(OutcomeNoMatch), string(OutcomeError)}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// Message is a custom failure message: a template and its arguments.
type Message []any

// Value wraps a decoded case value.
type Value struct {
	V any
}

// Tagged is a value written with a local YAML tag.
type Tagged struct {
	Name   string
	Values []any
	Keys   []string // nil for positional fields
}

// Tag implements matches.Variant.
func (t Tagged) Tag() string { return t.Name }

// Fields implements matches.Variant.
func (t Tagged) Fields() []any { return t.Values }

// FieldNames implements matches.FieldNamer.
func (t Tagged) FieldNames() []string { return t.Keys }

// Record is an untagged mapping. It has named fields and an empty tag.
type Record struct {
	Keys   []string
	Values []any
}

// Tag implements matches.Variant.
func (r Record) Tag() string { return "" }

// Fields implements matches.Variant.
func (r Record) Fields() []any { return r.Values }

// FieldNames implements matches.FieldNamer.
func (r Record) FieldNames() []string { return r.Keys }
