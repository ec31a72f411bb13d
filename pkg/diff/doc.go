// Package diff compares two virtual trees and emits the ordered patch log
// that transforms one into the other.
//
// The differ is pure: it never mutates tree structure, performs no I/O, and
// has no failure modes — a structural mismatch is resolved by emitting a
// ReplaceNode for the whole subtree, never surfaced as an error. Keyed
// children are matched by their reconciliation key and order changes
// collapse into a single ReorderChildren permutation; unkeyed lists are
// matched positionally. Memoized subtrees whose recorded structural
// fingerprint is unchanged are skipped entirely.
//
// Duplicate sibling keys are tolerated (first match wins, later duplicates
// fall back to positional treatment) and reported on the log as
// DuplicateKeyWarnings for caller diagnostics.
package diff
