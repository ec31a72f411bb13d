package live

import (
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Node is one node of the live document tree. The tree is owned top-down:
// a parent owns its children, and Parent is a plain non-owning pointer, so
// there are no reference cycles to manage.
type Node struct {
	Ref      uint64
	Kind     vtree.Kind
	Tag      string
	Attrs    []vtree.Attr // ordered; never contains handler values
	Text     string
	Parent   *Node
	Children []*Node

	listeners map[string]*vtree.Callback
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (vtree.AttrValue, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return vtree.AttrValue{}, false
}

// setAttr sets an attribute in place, appending when new.
func (n *Node) setAttr(name string, value vtree.AttrValue) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, vtree.Attr{Name: name, Value: value})
}

// removeAttr removes an attribute by name, preserving the order of the
// rest.
func (n *Node) removeAttr(name string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// Listener returns the registered handler for the event, or nil.
func (n *Node) Listener(event string) *vtree.Callback {
	return n.listeners[event]
}

// ListenerCount returns the number of registered event handlers.
func (n *Node) ListenerCount() int {
	return len(n.listeners)
}

// insertChild inserts c at position i, clamped to the child list bounds.
func (n *Node) insertChild(i int, c *Node) {
	if i < 0 {
		i = 0
	}
	if i > len(n.Children) {
		i = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = c
	c.Parent = n
}

// childIndex returns c's position in n's child list, or -1.
func (n *Node) childIndex(c *Node) int {
	for i, child := range n.Children {
		if child == c {
			return i
		}
	}
	return -1
}

// detach unlinks n from its parent. The subtree stays intact.
func (n *Node) detach() {
	p := n.Parent
	if p == nil {
		return
	}
	if i := p.childIndex(n); i >= 0 {
		p.Children = append(p.Children[:i], p.Children[i+1:]...)
	}
	n.Parent = nil
}

// Equal reports structural equality of two live trees: kind, tag, text,
// attributes (order-insensitive), and children in order. Listeners are
// identity-compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	if len(a.listeners) != len(b.listeners) {
		return false
	}
	for _, attr := range a.Attrs {
		bv, ok := b.Attr(attr.Name)
		if !ok || !attr.Value.Equal(bv) {
			return false
		}
	}
	for event, cb := range a.listeners {
		if b.listeners[event] != cb {
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
