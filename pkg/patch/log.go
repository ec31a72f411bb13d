package patch

// DuplicateKeyWarning reports siblings sharing a reconciliation key. The
// differ proceeds first-match-wins; the warning is diagnostic only.
type DuplicateKeyWarning struct {
	Parent uint64 // Parent node ref (zero for the root pair)
	Key    string
}

// Log is the append-only ordered sequence of patches produced by one diff
// pass, plus the diagnostics gathered along the way.
type Log struct {
	patches  []Patch
	counts   map[Kind]int
	warnings []DuplicateKeyWarning
}

// NewLog creates an empty patch log.
func NewLog() *Log {
	return &Log{counts: make(map[Kind]int)}
}

// Append adds a patch to the log.
func (l *Log) Append(p Patch) {
	l.patches = append(l.patches, p)
	l.counts[p.Kind]++
}

// Merge appends all patches and warnings of other, in order.
func (l *Log) Merge(other *Log) {
	if other == nil {
		return
	}
	for _, p := range other.patches {
		l.Append(p)
	}
	l.warnings = append(l.warnings, other.warnings...)
}

// Warn records a duplicate-key diagnostic.
func (l *Log) Warn(w DuplicateKeyWarning) {
	l.warnings = append(l.warnings, w)
}

// Patches returns the ordered patches. The returned slice is the log's
// backing storage; callers must not modify it.
func (l *Log) Patches() []Patch {
	return l.patches
}

// Len returns the number of patches in the log.
func (l *Log) Len() int {
	return len(l.patches)
}

// Count returns the number of patches of the given kind.
func (l *Log) Count(kind Kind) int {
	return l.counts[kind]
}

// Counts returns a copy of the per-kind patch counts.
func (l *Log) Counts() map[Kind]int {
	out := make(map[Kind]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

// Warnings returns the duplicate-key diagnostics gathered during the diff.
func (l *Log) Warnings() []DuplicateKeyWarning {
	return l.warnings
}
