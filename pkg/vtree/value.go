package vtree

import (
	"strings"
)

// ValueKind discriminates the closed set of attribute value variants.
type ValueKind uint8

const (
	ValueString  ValueKind = iota // plain string attribute
	ValueBool                     // boolean flag (present/absent)
	ValueStyle                    // ordered style property list
	ValueHandler                  // event handler reference
)

// String returns the string representation of the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "String"
	case ValueBool:
		return "Bool"
	case ValueStyle:
		return "Style"
	case ValueHandler:
		return "Handler"
	default:
		return "Unknown"
	}
}

// StyleProp is a single CSS property of a style value.
type StyleProp struct {
	Name  string
	Value string
}

// Event is the payload delivered to a handler when the live tree dispatches
// an event.
type Event struct {
	Type   string // "click", "input", ...
	Target uint64 // live node handle
	Value  string // input value, when applicable
}

// Callback wraps an event handler function. Handlers are compared by the
// identity of the Callback pointer: reuse the same Callback across renders
// to avoid re-registering the listener every cycle.
type Callback struct {
	fn func(Event)
}

// NewCallback wraps fn in a Callback.
func NewCallback(fn func(Event)) *Callback {
	return &Callback{fn: fn}
}

// Invoke calls the wrapped function. A nil Callback is a no-op.
func (c *Callback) Invoke(ev Event) {
	if c != nil && c.fn != nil {
		c.fn(ev)
	}
}

// AttrValue is the closed tagged union of attribute values. Both the differ
// and the patcher switch exhaustively over Kind; there is no open "any" bag.
type AttrValue struct {
	kind  ValueKind
	str   string
	flag  bool
	style []StyleProp
	cb    *Callback
}

// StringValue creates a plain string attribute value.
func StringValue(s string) AttrValue {
	return AttrValue{kind: ValueString, str: s}
}

// BoolValue creates a boolean flag attribute value.
func BoolValue(b bool) AttrValue {
	return AttrValue{kind: ValueBool, flag: b}
}

// StyleValue creates an ordered style mapping value.
func StyleValue(props ...StyleProp) AttrValue {
	return AttrValue{kind: ValueStyle, style: props}
}

// HandlerValue creates an event handler reference value.
func HandlerValue(cb *Callback) AttrValue {
	return AttrValue{kind: ValueHandler, cb: cb}
}

// Kind returns the variant tag.
func (v AttrValue) Kind() ValueKind { return v.kind }

// Str returns the string payload (ValueString only).
func (v AttrValue) Str() string { return v.str }

// Flag returns the boolean payload (ValueBool only).
func (v AttrValue) Flag() bool { return v.flag }

// Style returns the style property list (ValueStyle only).
func (v AttrValue) Style() []StyleProp { return v.style }

// Handler returns the callback reference (ValueHandler only).
func (v AttrValue) Handler() *Callback { return v.cb }

// Equal compares two values. Handlers compare by reference identity; a new
// value of a different kind always compares unequal, so the differ resolves
// mismatched types by overwriting with the new value regardless of the old.
func (v AttrValue) Equal(o AttrValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueString:
		return v.str == o.str
	case ValueBool:
		return v.flag == o.flag
	case ValueStyle:
		if len(v.style) != len(o.style) {
			return false
		}
		for i := range v.style {
			if v.style[i] != o.style[i] {
				return false
			}
		}
		return true
	case ValueHandler:
		return v.cb == o.cb
	default:
		return false
	}
}

// Text renders the value as the string the live tree stores for it.
// Handlers render as ""; flags render as "" (presence carries the meaning);
// styles render as "name: value; ..." in property order.
func (v AttrValue) Text() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueBool:
		return ""
	case ValueStyle:
		var b strings.Builder
		for i, p := range v.style {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(p.Name)
			b.WriteString(": ")
			b.WriteString(p.Value)
		}
		return b.String()
	default:
		return ""
	}
}
