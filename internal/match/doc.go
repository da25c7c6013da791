// Package match compares field and data key names loosely.
//
// Key functions:
//   - Fold: reduces an identifier to its lowercase tokens without separators
//   - Tokens: splits an identifier into lowercase words
//   - Distance: computes the edit distance between two names
//   - Closest: suggests the nearest known name for a misspelled one
package match
