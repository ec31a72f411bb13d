package vtree

// eventPrefix marks attribute names that carry event handler references.
// The differ splits these out into listener patches; they never reach the
// live tree as attributes.
const eventPrefix = "on"

// On attaches a handler for the named event (e.g., "click"). Reuse the same
// Callback across renders: handlers are diffed by reference identity, and a
// fresh Callback every cycle re-registers the listener every cycle.
func On(event string, cb *Callback) Attr {
	return Attr{Name: eventPrefix + event, Value: HandlerValue(cb)}
}

// IsEventAttr reports whether the attribute name carries an event handler,
// and returns the bare event name.
func IsEventAttr(name string) (string, bool) {
	if len(name) > len(eventPrefix) && name[:2] == eventPrefix {
		return name[2:], true
	}
	return "", false
}

// Event returns the bare event name when the attribute is a listener: the
// name must carry the event prefix AND the value must be a handler
// reference. Plain attributes that merely start with "on" (the open flag,
// inline HTML handler strings) are not listeners.
func (a Attr) Event() (string, bool) {
	if a.Value.Kind() != ValueHandler {
		return "", false
	}
	return IsEventAttr(a.Name)
}

// Mouse events

// OnClick handles click events.
func OnClick(cb *Callback) Attr { return On("click", cb) }

// OnDblClick handles dblclick events.
func OnDblClick(cb *Callback) Attr { return On("dblclick", cb) }

// OnMouseDown handles mousedown events.
func OnMouseDown(cb *Callback) Attr { return On("mousedown", cb) }

// OnMouseUp handles mouseup events.
func OnMouseUp(cb *Callback) Attr { return On("mouseup", cb) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(cb *Callback) Attr { return On("mouseenter", cb) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(cb *Callback) Attr { return On("mouseleave", cb) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(cb *Callback) Attr { return On("keydown", cb) }

// OnKeyUp handles keyup events.
func OnKeyUp(cb *Callback) Attr { return On("keyup", cb) }

// Form events

// OnInput handles input events.
func OnInput(cb *Callback) Attr { return On("input", cb) }

// OnChange handles change events.
func OnChange(cb *Callback) Attr { return On("change", cb) }

// OnSubmit handles submit events.
func OnSubmit(cb *Callback) Attr { return On("submit", cb) }

// OnFocus handles focus events.
func OnFocus(cb *Callback) Attr { return On("focus", cb) }

// OnBlur handles blur events.
func OnBlur(cb *Callback) Attr { return On("blur", cb) }
