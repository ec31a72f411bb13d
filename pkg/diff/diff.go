package diff

import (
	"github.com/reconcile-ui/reconcile/pkg/patch"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Diff compares two virtual trees and returns the patch log that transforms
// prev into next. Neither tree's structure is mutated; matched next nodes
// receive the live refs of their prev counterparts so the following cycle
// can address them.
//
// A nil prev means first render: the whole next tree is inserted under the
// root container. A nil next removes the tree.
func Diff(prev, next *vtree.Node) *patch.Log {
	return DiffWith(prev, next, Options{})
}

// DiffWith is Diff with explicit options.
func DiffWith(prev, next *vtree.Node, opts Options) *patch.Log {
	log := patch.NewLog()
	d := &differ{opts: opts}

	switch {
	case prev == nil && next == nil:
		// Nothing to do
	case prev == nil:
		log.Append(patch.NewInsertNode(patch.RootRef, 0, next))
	case next == nil:
		log.Append(patch.NewRemoveNode(prev.Ref))
	default:
		d.node(prev, next, log)
	}
	return log
}

// differ carries per-pass state.
type differ struct {
	opts Options
}

// node compares one matched pair. Both arguments are non-nil.
func (d *differ) node(prev, next *vtree.Node, log *patch.Log) {
	// Different kinds - replace the whole subtree, no recursion. Deep
	// patching of a node about to be discarded is wasted work.
	if prev.Kind != next.Kind {
		log.Append(patch.NewReplaceNode(prev.Ref, next))
		return
	}

	switch prev.Kind {
	case vtree.KindText, vtree.KindComment:
		next.Ref = prev.Ref
		if prev.Text != next.Text {
			log.Append(patch.NewSetText(prev.Ref, next.Text))
		}

	case vtree.KindElement:
		d.element(prev, next, log)

	case vtree.KindFragment:
		next.Ref = prev.Ref
		d.children(prev, next, log)
	}
}

// element compares two element nodes.
func (d *differ) element(prev, next *vtree.Node, log *patch.Log) {
	if !sameTag(prev, next) {
		log.Append(patch.NewReplaceNode(prev.Ref, next))
		return
	}

	next.Ref = prev.Ref

	// Subtree skip: only when the caller vouched for the subtree AND the
	// recorded structural fingerprint still matches AND the shapes line up
	// for ref propagation. Any doubt falls through to a full diff.
	if next.Memoized && prev.Recorded() != 0 &&
		prev.Recorded() == vtree.Fingerprint(next) &&
		vtree.CopyRefs(prev, next) {
		return
	}

	d.attrs(prev, next, log)
	d.children(prev, next, log)
}

// sameTag compares element tags, by interned symbol when both trees carry
// one, falling back to string comparison.
func sameTag(a, b *vtree.Node) bool {
	if a.TagSym != 0 && b.TagSym != 0 {
		return a.TagSym == b.TagSym
	}
	return a.Tag == b.Tag
}

// attrs diffs the attribute lists. Emission follows the new tree's
// attribute insertion order for sets, then the old tree's order for
// removals, so patch output is deterministic.
func (d *differ) attrs(prev, next *vtree.Node, log *patch.Log) {
	ref := prev.Ref

	for _, a := range next.Attrs {
		event, isEvent := a.Event()
		prevVal, existed := prev.Lookup(a.Name)

		if isEvent {
			switch {
			case !existed:
				log.Append(patch.NewAddListener(ref, event, a.Value.Handler()))
			case prevVal.Kind() != vtree.ValueHandler:
				// The name previously carried a plain value.
				log.Append(patch.NewRemoveAttr(ref, a.Name))
				log.Append(patch.NewAddListener(ref, event, a.Value.Handler()))
			case !prevVal.Equal(a.Value):
				// Remove before add so the old handler never fires twice.
				log.Append(patch.NewRemoveListener(ref, event))
				log.Append(patch.NewAddListener(ref, event, a.Value.Handler()))
			}
			continue
		}

		if existed && prevVal.Kind() == vtree.ValueHandler {
			// The name previously carried a listener.
			if ev, ok := vtree.IsEventAttr(a.Name); ok {
				log.Append(patch.NewRemoveListener(ref, ev))
			}
			log.Append(patch.NewSetAttr(ref, a.Name, a.Value))
			continue
		}

		// The new value overwrites regardless of the old value's type.
		if !existed || !prevVal.Equal(a.Value) {
			log.Append(patch.NewSetAttr(ref, a.Name, a.Value))
		}
	}

	for _, a := range prev.Attrs {
		if _, stillThere := next.Lookup(a.Name); stillThere {
			continue
		}
		if event, isEvent := a.Event(); isEvent {
			log.Append(patch.NewRemoveListener(ref, event))
		} else {
			log.Append(patch.NewRemoveAttr(ref, a.Name))
		}
	}
}

// children reconciles the child lists of a matched pair.
func (d *differ) children(prev, next *vtree.Node, log *patch.Log) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		d.keyedChildren(prev, next, log)
		return
	}
	d.indexedChildren(prev, next, log)
}

// indexedChildren handles unkeyed lists with positional matching.
func (d *differ) indexedChildren(prev, next *vtree.Node, log *patch.Log) {
	prevKids, nextKids := prev.Children, next.Children

	overlap := len(prevKids)
	if len(nextKids) < overlap {
		overlap = len(nextKids)
	}

	if d.opts.Parallel > 1 && overlap >= minParallelChildren {
		d.parallelPairs(prevKids[:overlap], nextKids[:overlap], log)
	} else {
		for i := 0; i < overlap; i++ {
			d.node(prevKids[i], nextKids[i], log)
		}
	}

	// Extra old tail is removed; extra new tail is appended.
	for _, dropped := range prevKids[overlap:] {
		log.Append(patch.NewRemoveNode(dropped.Ref))
	}
	for i := overlap; i < len(nextKids); i++ {
		log.Append(patch.NewInsertNode(prev.Ref, i, nextKids[i]))
	}
}

// keyedChildren handles lists where at least one child carries a key.
//
// Emission order: removals of vanished children, a single ReorderChildren
// permutation over the survivors when their relative order changed, inserts
// of new children at their final positions, then content recursion on the
// matched pairs in document order.
func (d *differ) keyedChildren(prev, next *vtree.Node, log *patch.Log) {
	prevKids, nextKids := prev.Children, next.Children

	// key -> first old index. Later duplicates are left unmatched and fall
	// back to positional treatment (removed, with the replacement inserted).
	oldByKey := make(map[string]int, len(prevKids))
	for i, c := range prevKids {
		if c.Key == "" {
			continue
		}
		if _, dup := oldByKey[c.Key]; dup {
			log.Warn(patch.DuplicateKeyWarning{Parent: prev.Ref, Key: c.Key})
			continue
		}
		oldByKey[c.Key] = i
	}

	seenNew := make(map[string]bool, len(nextKids))
	matchOf := make([]int, len(nextKids)) // next index -> old index, -1 if none
	matched := make([]bool, len(prevKids))

	for i, c := range nextKids {
		matchOf[i] = -1
		if c.Key == "" {
			continue
		}
		if seenNew[c.Key] {
			log.Warn(patch.DuplicateKeyWarning{Parent: prev.Ref, Key: c.Key})
			continue
		}
		seenNew[c.Key] = true
		if oldIdx, ok := oldByKey[c.Key]; ok {
			matchOf[i] = oldIdx
			matched[oldIdx] = true
		}
	}

	// Removals, in old document order.
	for i, c := range prevKids {
		if !matched[i] {
			log.Append(patch.NewRemoveNode(c.Ref))
		}
	}

	// Survivors in old order, and their target order from the new list.
	var survivors []int
	for i := range prevKids {
		if matched[i] {
			survivors = append(survivors, i)
		}
	}
	posInSurvivors := make(map[int]int, len(survivors))
	for pos, oldIdx := range survivors {
		posInSurvivors[oldIdx] = pos
	}

	var target []int
	for i := range nextKids {
		if matchOf[i] >= 0 {
			target = append(target, matchOf[i])
		}
	}

	if perm := permutation(survivors, target, posInSurvivors); perm != nil {
		log.Append(patch.NewReorderChildren(prev.Ref, perm))
	}

	// Inserts at final positions, ascending.
	for i, c := range nextKids {
		if matchOf[i] < 0 {
			log.Append(patch.NewInsertNode(prev.Ref, i, c))
		}
	}

	// Content recursion on matched pairs, in new document order. Moves are
	// already covered by the permutation; only content cost remains.
	for i, c := range nextKids {
		if matchOf[i] >= 0 {
			d.node(prevKids[matchOf[i]], c, log)
		}
	}
}

// permutation returns the survivor permutation mapping, or nil when the
// order is unchanged. perm[i] is the position in the pre-patch survivor
// list of the child to place at position i.
func permutation(survivors, target []int, posInSurvivors map[int]int) []int {
	identity := true
	for i := range target {
		if survivors[i] != target[i] {
			identity = false
			break
		}
	}
	if identity {
		return nil
	}
	perm := make([]int, len(target))
	for i, oldIdx := range target {
		perm[i] = posInSurvivors[oldIdx]
	}
	return perm
}

// hasKeys returns true if any child carries a key.
func hasKeys(children []*vtree.Node) bool {
	for _, c := range children {
		if c.Key != "" {
			return true
		}
	}
	return false
}
