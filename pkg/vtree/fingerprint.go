package vtree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/reconcile-ui/reconcile/pkg/intern"
)

// Fingerprint computes a cheap structural fingerprint of the subtree: the
// node kind, tag, key, child count, and the fingerprints of the children.
// Attribute values and text payloads are deliberately excluded — the
// fingerprint only guards the subtree-skip optimization, where the caller's
// Memo mark vouches for content.
func Fingerprint(n *Node) uint64 {
	if n == nil {
		return 0
	}
	d := xxhash.New()
	var scratch [8]byte

	d.WriteString(n.Tag)
	d.WriteString(n.Key)
	scratch[0] = byte(n.Kind)
	d.Write(scratch[:1])
	binary.BigEndian.PutUint64(scratch[:], uint64(len(n.Children)))
	d.Write(scratch[:])

	for _, c := range n.Children {
		binary.BigEndian.PutUint64(scratch[:], Fingerprint(c))
		d.Write(scratch[:])
	}
	return d.Sum64()
}

// Record captures fingerprints on every node of the tree and returns the
// root fingerprint. The engine calls this on the tree it retains between
// cycles so the differ can compare against the recorded value.
func Record(n *Node) uint64 {
	if n == nil {
		return 0
	}
	for _, c := range n.Children {
		Record(c)
	}
	n.fp = Fingerprint(n)
	return n.fp
}

// Recorded returns the fingerprint captured by Record, or zero if the tree
// was never recorded.
func (n *Node) Recorded() uint64 {
	if n == nil {
		return 0
	}
	return n.fp
}

// Intern walks the tree and fills TagSym for every element from the given
// table. Interned trees let the differ compare tags by integer identity.
func Intern(t *intern.Table, n *Node) {
	if t == nil || n == nil {
		return
	}
	if n.Kind == KindElement {
		n.TagSym = t.Intern(n.Tag)
	}
	for _, c := range n.Children {
		Intern(t, c)
	}
}

// CopyRefs copies live-node refs from the source tree to an identically
// shaped destination tree. Used when the differ skips a memoized subtree:
// the destination still needs the refs for the next cycle. Returns false if
// the shapes do not match, in which case the caller must fall back to a
// full diff.
func CopyRefs(src, dst *Node) bool {
	if src == nil || dst == nil {
		return src == nil && dst == nil
	}
	if src.Kind != dst.Kind || len(src.Children) != len(dst.Children) {
		return false
	}
	dst.Ref = src.Ref
	for i := range src.Children {
		if !CopyRefs(src.Children[i], dst.Children[i]) {
			return false
		}
	}
	return true
}
