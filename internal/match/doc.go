// Package match provides identifier normalization, Levenshtein distance and
// candidate ranking for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks known names against an unknown one
//   - Suggest: returns the closest known names worth suggesting
package match
