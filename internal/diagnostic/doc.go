// Package diagnostic provides structured errors, warnings and notes produced
// while extracting dependencies and while validating configuration.
//
// Key capabilities:
//   - Per-call failures that do not abort the walk (unsupported specifiers)
//   - Advisory warnings for heuristic matches (bare loader references)
//   - Source position on every entry so tools can point at the code
package diagnostic
