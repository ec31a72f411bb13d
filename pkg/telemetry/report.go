package telemetry

import (
	"time"

	"github.com/reconcile-ui/reconcile/pkg/patch"
)

// Report is the read-only per-cycle summary handed back to callers: how
// many patches of each kind one render cycle produced and how long each
// phase took.
type Report struct {
	// Patches is the total patch count for the cycle.
	Patches int

	// Counts breaks the total down by patch kind.
	Counts map[patch.Kind]int

	// DuplicateKeys is the number of duplicate-key diagnostics.
	DuplicateKeys int

	// DiffDuration is the time spent comparing the trees.
	DiffDuration time.Duration

	// ApplyDuration is the time spent mutating the live tree.
	ApplyDuration time.Duration
}

// NewReport summarizes a patch log and phase timings.
func NewReport(log *patch.Log, diffDur, applyDur time.Duration) *Report {
	return &Report{
		Patches:       log.Len(),
		Counts:        log.Counts(),
		DuplicateKeys: len(log.Warnings()),
		DiffDuration:  diffDur,
		ApplyDuration: applyDur,
	}
}
