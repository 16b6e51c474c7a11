// Package pattern parses pattern source text into a tree that the matching
// engine can evaluate, and prints that tree back in canonical form.
//
// Key capabilities:
//   - Alternatives joined by "|", with nested or-patterns inside arguments
//   - Constructor patterns: Name, Pkg.Name, Name(a, b), Name{Field: p, ..}
//   - Bindings (x), wildcards (_), "x @ p" sub-bindings
//   - Literals, ranges (lo..=hi, lo..hi) and slice patterns ([a, .., z])
//   - An optional "if" guard expression over the bound names
//   - Construction checks: every alternative binds the same names, and the
//     guard only references names that are bound
//
// Printing never echoes the source text: Print walks the tree, so spacing is
// decided by each token's syntactic role rather than by the author's layout.
package pattern
