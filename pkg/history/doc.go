// Package history retains encoded patch logs by cycle sequence: a
// fixed-size in-memory ring for the recent window and an optional
// bbolt-backed store for sessions that should survive the process.
//
// The engine records each cycle's log after a successful apply; the replay
// command reads them back and reapplies them against a fresh live tree.
package history
