package vtree

import (
	"github.com/reconcile-ui/reconcile/pkg/intern"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindComment              // Comment / position marker
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is a virtual tree node. Nodes are pure data: the application builds a
// fresh tree per render and hands it to the differ, which never mutates the
// structure. Ref is the one exception — it is identity bookkeeping written
// by the differ and the patcher so nodes can be matched across cycles.
type Node struct {
	Kind     Kind          // Node type
	Tag      string        // Element tag name (e.g., "div")
	TagSym   intern.Symbol // Interned tag, when an intern table is attached
	Attrs    []Attr        // Ordered attributes and event handlers
	Children []*Node       // Child nodes
	Key      string        // Reconciliation key; "" means positional matching
	Text     string        // For KindText and KindComment

	// Ref is the live-node identity this virtual node corresponds to.
	// Zero means "not yet materialized". Assigned by the patcher, copied
	// from the previous tree by the differ on matched pairs.
	Ref uint64

	// Memoized marks a subtree the caller guarantees unchanged since the
	// previous render. Combined with an unchanged structural fingerprint it
	// lets the differ skip the subtree entirely.
	Memoized bool

	fp uint64 // structural fingerprint captured by Record
}

// Attr is a single named attribute with its tagged value.
type Attr struct {
	Name  string
	Value AttrValue
}

// IsEmpty reports whether this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Name == ""
}

// Lookup returns the value of the named attribute and whether it is present.
func (n *Node) Lookup(name string) (AttrValue, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return AttrValue{}, false
}

// setAttr appends an attribute, or overwrites the value in place when the
// name is already present (last write wins, first position kept so emission
// order stays stable).
func (n *Node) setAttr(a Attr) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == a.Name {
			n.Attrs[i].Value = a.Value
			return
		}
	}
	n.Attrs = append(n.Attrs, a)
}

// Walk visits n and its descendants in document order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// Equal reports deep structural equality of two trees. Attribute order is
// not significant; handler values compare by reference identity. Ref,
// Memoized, and recorded fingerprints are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for _, attr := range a.Attrs {
		bv, ok := b.Lookup(attr.Name)
		if !ok || !attr.Value.Equal(bv) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the tree. Attribute values are shared (they
// are immutable); Ref and fingerprints are not carried over.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind: n.Kind,
		Tag:  n.Tag,
		Key:  n.Key,
		Text: n.Text,
	}
	if len(n.Attrs) > 0 {
		c.Attrs = make([]Attr, len(n.Attrs))
		copy(c.Attrs, n.Attrs)
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = Clone(child)
		}
	}
	return c
}

// Count returns the number of nodes in the tree.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}
