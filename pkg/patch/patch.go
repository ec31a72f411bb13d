package patch

import (
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// RootRef is the reserved identity of the live tree's mount container. A
// first render inserts the whole tree under it.
const RootRef uint64 = 1

// Kind is the type of patch operation.
type Kind uint8

const (
	SetText         Kind = 0x01 // Update text content
	SetAttr         Kind = 0x02 // Set/update attribute
	RemoveAttr      Kind = 0x03 // Remove attribute
	InsertNode      Kind = 0x04 // Insert new subtree
	RemoveNode      Kind = 0x05 // Remove node
	ReorderChildren Kind = 0x06 // Permute existing children
	ReplaceNode     Kind = 0x07 // Replace subtree entirely
	AddListener     Kind = 0x08 // Register event handler
	RemoveListener  Kind = 0x09 // Unregister event handler
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case SetText:
		return "SetText"
	case SetAttr:
		return "SetAttr"
	case RemoveAttr:
		return "RemoveAttr"
	case InsertNode:
		return "InsertNode"
	case RemoveNode:
		return "RemoveNode"
	case ReorderChildren:
		return "ReorderChildren"
	case ReplaceNode:
		return "ReplaceNode"
	case AddListener:
		return "AddListener"
	case RemoveListener:
		return "RemoveListener"
	default:
		return "Unknown"
	}
}

// Patch is a single mutation instruction. Ref addresses the target node by
// its identity in the pre-patch live tree; patches within one log are only
// valid when applied strictly in emission order.
type Patch struct {
	Kind    Kind
	Ref     uint64          // Target node
	Parent  uint64          // Parent node for InsertNode
	Index   int             // Insert position
	Name    string          // Attribute name
	Value   vtree.AttrValue // Attribute value for SetAttr
	Text    string          // Payload for SetText
	Node    *vtree.Node     // Subtree for InsertNode/ReplaceNode
	Perm    []int           // Child permutation for ReorderChildren
	Event   string          // Listener event name
	Handler *vtree.Callback // Listener reference; elided by the codecs
}

// NewSetText creates a SetText patch.
func NewSetText(ref uint64, text string) Patch {
	return Patch{Kind: SetText, Ref: ref, Text: text}
}

// NewSetAttr creates a SetAttr patch.
func NewSetAttr(ref uint64, name string, value vtree.AttrValue) Patch {
	return Patch{Kind: SetAttr, Ref: ref, Name: name, Value: value}
}

// NewRemoveAttr creates a RemoveAttr patch.
func NewRemoveAttr(ref uint64, name string) Patch {
	return Patch{Kind: RemoveAttr, Ref: ref, Name: name}
}

// NewInsertNode creates an InsertNode patch.
func NewInsertNode(parent uint64, index int, node *vtree.Node) Patch {
	return Patch{Kind: InsertNode, Parent: parent, Index: index, Node: node}
}

// NewRemoveNode creates a RemoveNode patch.
func NewRemoveNode(ref uint64) Patch {
	return Patch{Kind: RemoveNode, Ref: ref}
}

// NewReorderChildren creates a ReorderChildren patch. Perm[i] is the
// pre-patch position, among the children surviving earlier removals, of the
// child to place at position i.
func NewReorderChildren(ref uint64, perm []int) Patch {
	return Patch{Kind: ReorderChildren, Ref: ref, Perm: perm}
}

// NewReplaceNode creates a ReplaceNode patch.
func NewReplaceNode(ref uint64, node *vtree.Node) Patch {
	return Patch{Kind: ReplaceNode, Ref: ref, Node: node}
}

// NewAddListener creates an AddListener patch.
func NewAddListener(ref uint64, event string, handler *vtree.Callback) Patch {
	return Patch{Kind: AddListener, Ref: ref, Event: event, Handler: handler}
}

// NewRemoveListener creates a RemoveListener patch.
func NewRemoveListener(ref uint64, event string) Patch {
	return Patch{Kind: RemoveListener, Ref: ref, Event: event}
}
