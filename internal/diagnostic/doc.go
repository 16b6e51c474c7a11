// Package diagnostic renders match failures and case-file issues.
//
// Key capabilities:
//   - Default assert and unwrap failure messages
//   - Custom messages with "{}" style placeholders
//   - Compact, depth-limited value rendering
//   - Coded errors, warnings and infos for case-file validation
package diagnostic
