package history

import (
	"sync"
	"time"
)

// Entry stores one cycle's encoded patch log.
type Entry struct {
	Seq        uint64    // Cycle sequence number
	Frame      []byte    // Encoded patch log
	RecordedAt time.Time // When the cycle completed
}

// Ring is a thread-safe ring buffer of recent patch logs, keyed by cycle
// sequence. When full it overwrites the oldest entry, keeping a sliding
// window that a debugging session or a lagging mirror can replay from.
type Ring struct {
	mu       sync.RWMutex
	entries  []*Entry
	head     int    // Next write position (circular)
	count    int    // Current number of entries
	capacity int    // Max entries
	minSeq   uint64 // Lowest sequence in buffer
	maxSeq   uint64 // Highest sequence in buffer
}

// DefaultCapacity is the ring size used when none is configured.
const DefaultCapacity = 100

// NewRing creates a ring buffer with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		entries:  make([]*Entry, capacity),
		capacity: capacity,
	}
}

// Add stores an encoded patch log under its cycle sequence. The frame
// bytes are copied so callers may reuse their buffer. Sequences must be
// added in increasing order; the engine assigns them monotonically.
func (r *Ring) Add(seq uint64, frame []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frameCopy := make([]byte, len(frame))
	copy(frameCopy, frame)

	r.entries[r.head] = &Entry{
		Seq:        seq,
		Frame:      frameCopy,
		RecordedAt: time.Now(),
	}
	r.head = (r.head + 1) % r.capacity

	if r.count < r.capacity {
		r.count++
	}

	r.maxSeq = seq
	if r.count == 1 {
		r.minSeq = seq
	} else if r.count == r.capacity {
		// Buffer full; the oldest entry is the one head now points at.
		if oldest := r.entries[r.head]; oldest != nil {
			r.minSeq = oldest.Seq
		}
	}
}

// Get returns the frame stored for one sequence.
func (r *Ring) Get(seq uint64) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := 0; i < r.count; i++ {
		idx := (r.head - r.count + i + r.capacity) % r.capacity
		if e := r.entries[idx]; e != nil && e.Seq == seq {
			return e.Frame, true
		}
	}
	return nil, false
}

// Frames returns frames for sequences (afterSeq, toSeq], in order. It
// returns nil if any sequence in the range has been overwritten.
func (r *Ring) Frames(afterSeq, toSeq uint64) [][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	if afterSeq+1 < r.minSeq || toSeq > r.maxSeq {
		return nil
	}

	bySeq := make(map[uint64][]byte, r.count)
	for i := 0; i < r.count; i++ {
		idx := (r.head - r.count + i + r.capacity) % r.capacity
		if e := r.entries[idx]; e != nil {
			bySeq[e.Seq] = e.Frame
		}
	}

	var frames [][]byte
	for seq := afterSeq + 1; seq <= toSeq; seq++ {
		frame, ok := bySeq[seq]
		if !ok {
			return nil
		}
		frames = append(frames, frame)
	}
	return frames
}

// CanReplay reports whether every cycle after lastSeq is still buffered.
func (r *Ring) CanReplay(lastSeq uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return false
	}
	return lastSeq+1 >= r.minSeq && lastSeq < r.maxSeq
}

// MinSeq returns the lowest buffered sequence.
func (r *Ring) MinSeq() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.minSeq
}

// MaxSeq returns the highest buffered sequence.
func (r *Ring) MaxSeq() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxSeq
}

// Count returns the number of buffered entries.
func (r *Ring) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Clear drops all entries.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		r.entries[i] = nil
	}
	r.head = 0
	r.count = 0
	r.minSeq = 0
	r.maxSeq = 0
}
