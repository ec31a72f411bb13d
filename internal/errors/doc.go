// Package errors provides structured errors for the reconciliation engine.
//
// Every failure surfaced to callers carries a stable code (RE0001, RE0002,
// ...) registered in this package, a category, and an optional wrapped
// cause. Codes are matched with errors.Is so callers can branch on the
// condition rather than the message text.
package errors
