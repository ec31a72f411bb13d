package live

import (
	reerrors "github.com/reconcile-ui/reconcile/internal/errors"
	"github.com/reconcile-ui/reconcile/pkg/patch"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Patcher owns a live tree and applies patch logs against it. It is the
// only component allowed to mutate the tree, and the sole owner of the
// identity index. Apply is not safe for concurrent use; the engine
// serializes cycles.
type Patcher struct {
	root    *Node
	index   *Index
	nextRef uint64
	corrupt bool
}

// NewPatcher creates a patcher with an empty mount container.
func NewPatcher() *Patcher {
	p := &Patcher{
		index:   NewIndex(),
		nextRef: patch.RootRef + 1,
	}
	p.root = &Node{Ref: patch.RootRef, Kind: vtree.KindFragment}
	p.index.register(p.root)
	return p
}

// Root returns the mount container. Its children are the rendered tree.
func (p *Patcher) Root() *Node {
	return p.root
}

// Index returns the identity index for read-only inspection.
func (p *Patcher) Index() *Index {
	return p.index
}

// Corrupt reports whether a previous Apply failed mid-way, leaving the
// tree out of sync with the retained virtual tree.
func (p *Patcher) Corrupt() bool {
	return p.corrupt
}

// Reset discards the whole live tree and clears the corrupt flag. The
// engine uses it to resynchronize from scratch after a failed apply.
func (p *Patcher) Reset() {
	p.index.clear()
	p.root = &Node{Ref: patch.RootRef, Kind: vtree.KindFragment}
	p.index.register(p.root)
	p.corrupt = false
}

// Apply applies a patch log strictly in emission order. Order is part of
// the contract: later patches may address structure earlier ones created.
//
// A patch whose target cannot be resolved fails the call with
// RE0001 (patch target missing). Patches already applied stay applied —
// there is no rollback — and the tree is flagged corrupt; callers must
// resynchronize by re-rendering, which replaces the root subtree.
func (p *Patcher) Apply(log *patch.Log) error {
	if p.corrupt {
		return reerrors.New(reerrors.CodeTreeCorrupt)
	}

	for i, pt := range log.Patches() {
		if err := p.apply(pt); err != nil {
			p.corrupt = true
			return reerrors.FromError(err, reerrors.CodePatchTargetMissing).
				WithDetail("patch %d/%d (%s, ref %d)", i+1, log.Len(), pt.Kind, pt.Ref)
		}
	}
	return nil
}

// apply dispatches a single patch.
func (p *Patcher) apply(pt patch.Patch) error {
	switch pt.Kind {
	case patch.SetText:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		n.Text = pt.Text

	case patch.SetAttr:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		n.setAttr(pt.Name, pt.Value)

	case patch.RemoveAttr:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		n.removeAttr(pt.Name)

	case patch.InsertNode:
		parent, err := p.resolve(pt.Parent)
		if err != nil {
			return err
		}
		if pt.Node == nil {
			return reerrors.Newf(reerrors.CategoryApply, "%s carries no node payload", pt.Kind)
		}
		parent.insertChild(pt.Index, p.materialize(pt.Node))

	case patch.RemoveNode:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		n.detach()
		p.index.deregister(n)

	case patch.ReorderChildren:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		return p.reorder(n, pt.Perm)

	case patch.ReplaceNode:
		old, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		if pt.Node == nil {
			return reerrors.Newf(reerrors.CategoryApply, "%s carries no node payload", pt.Kind)
		}
		fresh := p.materialize(pt.Node)
		if parent := old.Parent; parent != nil {
			i := parent.childIndex(old)
			parent.Children[i] = fresh
			fresh.Parent = parent
			old.Parent = nil
		}
		p.index.deregister(old)

	case patch.AddListener:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		if n.listeners == nil {
			n.listeners = make(map[string]*vtree.Callback)
		}
		n.listeners[pt.Event] = pt.Handler

	case patch.RemoveListener:
		n, err := p.resolve(pt.Ref)
		if err != nil {
			return err
		}
		delete(n.listeners, pt.Event)

	default:
		return reerrors.Newf(reerrors.CategoryApply, "unknown patch kind 0x%02x", uint8(pt.Kind))
	}
	return nil
}

// resolve looks up a live node by ref.
func (p *Patcher) resolve(ref uint64) (*Node, error) {
	n, ok := p.index.Resolve(ref)
	if !ok {
		return nil, reerrors.New(reerrors.CodePatchTargetMissing).
			WithDetail("ref %d is not in the identity index", ref)
	}
	return n, nil
}

// reorder physically moves the existing children into the permuted order
// without recreating them, preserving their identity (and with it focus,
// scroll position, and input state in a real document).
func (p *Patcher) reorder(n *Node, perm []int) error {
	if len(perm) != len(n.Children) {
		return reerrors.Newf(reerrors.CategoryApply,
			"permutation length %d does not match %d children", len(perm), len(n.Children))
	}
	seen := make([]bool, len(perm))
	for _, idx := range perm {
		if idx < 0 || idx >= len(perm) || seen[idx] {
			return reerrors.Newf(reerrors.CategoryApply, "invalid permutation %v", perm)
		}
		seen[idx] = true
	}

	reordered := make([]*Node, len(perm))
	for i, idx := range perm {
		reordered[i] = n.Children[idx]
	}
	copy(n.Children, reordered)
	return nil
}

// materialize builds a live subtree from a virtual one, assigns every node
// a fresh ref, registers the identity index entries, and writes the refs
// back into the virtual nodes so the next diff can address them.
func (p *Patcher) materialize(v *vtree.Node) *Node {
	n := &Node{
		Ref:  p.nextRef,
		Kind: v.Kind,
		Tag:  v.Tag,
		Text: v.Text,
	}
	p.nextRef++
	v.Ref = n.Ref
	p.index.register(n)

	for _, a := range v.Attrs {
		if event, isEvent := a.Event(); isEvent {
			if n.listeners == nil {
				n.listeners = make(map[string]*vtree.Callback)
			}
			n.listeners[event] = a.Value.Handler()
			continue
		}
		n.Attrs = append(n.Attrs, a)
	}

	for _, c := range v.Children {
		child := p.materialize(c)
		child.Parent = n
		n.Children = append(n.Children, child)
	}
	return n
}

// Listener returns the callback registered on the addressed live node, or
// nil when the ref is unknown or carries no listener for the event. Callers
// that serialize access to the patcher must invoke the callback after
// releasing their lock: handlers commonly schedule the next render.
func (p *Patcher) Listener(ref uint64, event string) *vtree.Callback {
	n, ok := p.index.Resolve(ref)
	if !ok {
		return nil
	}
	return n.listeners[event]
}

// Dispatch delivers an event to the listener registered on the addressed
// live node. Unknown refs and missing listeners are ignored: events racing
// a removal are expected during normal operation.
func (p *Patcher) Dispatch(ref uint64, event string, value string) {
	p.Listener(ref, event).Invoke(vtree.Event{Type: event, Target: ref, Value: value})
}
