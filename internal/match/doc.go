// Package match evaluates parsed patterns against runtime values.
//
// Key functions:
//   - Match: tries alternatives left to right, binds names atomically per
//     alternative and runs the guard once for the first structural match
//   - Variant / FieldNamer: interfaces a type implements to expose its tag
//     and fields; structs and fmt.Stringer enums are inspected by reflection
//   - RankCandidates / Suggest: "did you mean" hints for unknown field names,
//     scored with normalized Levenshtein similarity
package match
