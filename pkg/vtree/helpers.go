package vtree

import "fmt"

// Text creates a text node.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Comment creates a comment node. Comments take part in reconciliation as
// position markers but carry no attributes or children.
func Comment(text string) *Node {
	return &Node{
		Kind: KindComment,
		Text: text,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	node := &Node{Kind: KindFragment}
	appendChildren(node, children)
	return node
}

// El creates an element node. Arguments may be Attr, []Attr, *Node, []*Node,
// or string (converted to a text child). A duplicate attribute name
// overwrites the earlier value (last write wins).
func El(tag string, args ...any) *Node {
	node := &Node{
		Kind: KindElement,
		Tag:  tag,
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.IsEmpty() {
				continue
			}
			if v.Name == keyAttr {
				node.Key = v.Value.Str()
				continue
			}
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				if a.IsEmpty() {
					continue
				}
				if a.Name == keyAttr {
					node.Key = a.Value.Str()
					continue
				}
				node.setAttr(a)
			}
		default:
			appendChildren(node, []any{arg})
		}
	}
	return node
}

// appendChildren flattens child arguments onto node.Children.
func appendChildren(node *Node, children []any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
}

// keyAttr is the pseudo-attribute name used to carry reconciliation keys
// through the builder. It never appears on the node's attribute list.
const keyAttr = "key"

// Key creates a reconciliation key for the node. The key is converted to a
// string with fmt.Sprintf.
func Key(key any) Attr {
	return Attr{Name: keyAttr, Value: StringValue(fmt.Sprintf("%v", key))}
}

// Memo marks the subtree as unchanged since the previous render. The differ
// may skip it when the structural fingerprint also matches; any uncertainty
// forces a full diff.
func Memo(node *Node) *Node {
	if node != nil {
		node.Memoized = true
	}
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation. The function is only called if
// condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Map maps a slice to nodes, dropping nils.
func Map[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
