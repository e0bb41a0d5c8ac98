// Package diagnostic provides structured errors, warnings and notes
// collected while checking a mapping definition.
//
// Key capabilities:
//   - Unknown transformer and pipeline references, with suggestions
//   - Operations that compile to nothing (empty $alt, $iterate)
//   - Unknown reserved keys and unused named pipelines
package diagnostic
