// Package matches tests runtime values against structural patterns.
//
// A pattern is written as a string of alternatives joined by "|" with an
// optional "if" guard:
//
//	Some(x) | Ok(x) if x < 10
//
// Constructors match values by tag: types implementing [Variant], structs by
// type name, and named scalar types by their String method. Alternatives are
// tried left to right and the first one whose shape matches is selected; a
// false guard ends the match without trying later alternatives.
//
// Four entry points share the same matching core:
//   - [Matches] reports whether a value matches.
//   - [Assert] panics with a [*MatchError] when it does not.
//   - [Unwrap] returns a value computed from the bindings, or panics.
//   - [Optional] returns Some of that value, or None, and never builds a
//     failure message.
//
// Malformed patterns and values that cannot be inspected are programming
// errors: every entry point panics on them, while [Compile], [Check] and
// [TryUnwrap] return them.
package matches
