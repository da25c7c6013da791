// Package diagnostic collects the issues found while checking the elements
// of a document against declared types.
//
// Key capabilities:
//   - Per-element errors for values no declared type accepts
//   - Warnings for elements that pass without being checked
//   - Infos describing how a value was coerced
//   - Suggestions naming the types that would accept a rejected value
package diagnostic
