// Package casefile loads, validates and runs YAML files of match cases.
//
// # Schema Overview
//
//	settings:
//	  verbose: false
//	  max_depth: 8
//	cases:
//	  - name: unwrap B
//	    value: !B [0.5]
//	    pattern: "A(i) | B(i) if i < 100"
//	    mode: unwrap            # assert (default) | unwrap | optional
//	    expect: match           # match (default) | nomatch | error
//	    bind: {i: 0.5}
//	  - name: custom message
//	    value: !Some 3
//	    pattern: "None"
//	    expect: nomatch
//	    message: ["bad value: {0}", 42]
//	    diagnostic: "bad value: 42"
//
// # Values
//
// Local YAML tags build tagged values that constructor patterns match:
//
//   - "!None" with no content has no fields
//   - "!Some 3" has one field
//   - "!Pair [1, 2]" has positional fields
//   - "!Point {X: 1, Y: 2}" has named fields
//
// Untagged mappings become records with named fields and no tag, sequences
// become []any and scalars decode to int, float64, string, bool or nil.
//
// # Messages
//
// "message" is either a template string or a sequence of a template and its
// arguments. A single-key mapping among the arguments supplies a named
// argument: ["got {n}", {n: 3}].
package casefile
