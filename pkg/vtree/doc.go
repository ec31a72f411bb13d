// Package vtree provides the virtual tree node model for the reconciliation
// engine.
//
// A Node describes desired UI structure: elements with ordered attributes
// and children, text, fragments, and comment markers. Trees are pure data —
// the application builds a fresh tree per render with the variadic factory
// functions:
//
//	vtree.Div(vtree.Class("card"), vtree.ID("main"),
//	    vtree.H1(vtree.Text("Title")),
//	    vtree.P(vtree.Text("Content")),
//	    vtree.OnClick(handler),
//	)
//
// Attribute values are a closed tagged union (string, boolean flag, style
// mapping, event handler reference); see AttrValue. Children order is
// document order and semantically significant. A Key identifies a node
// among its siblings across renders for keyed reconciliation.
//
// Trees handed to the differ are never structurally mutated. The Ref field
// is bookkeeping written by the patcher and differ to match nodes with live
// counterparts across cycles.
package vtree
