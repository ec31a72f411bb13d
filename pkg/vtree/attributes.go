package vtree

import "strings"

// attr creates an Attr with a plain string value.
func attr(name, value string) Attr {
	return Attr{Name: name, Value: StringValue(value)}
}

// flag creates an Attr with a boolean flag value.
func flag(name string, on bool) Attr {
	return Attr{Name: name, Value: BoolValue(on)}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Style sets the style attribute from ordered property pairs.
func Style(props ...StyleProp) Attr {
	return Attr{Name: "style", Value: StyleValue(props...)}
}

// Prop creates a single style property for Style.
func Prop(name, value string) StyleProp {
	return StyleProp{Name: name, Value: value}
}

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Data creates a data-* attribute. Example: Data("id", "123") → data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Boolean flags

// Disabled sets the disabled flag.
func Disabled() Attr { return flag("disabled", true) }

// Readonly sets the readonly flag.
func Readonly() Attr { return flag("readonly", true) }

// Required sets the required flag.
func Required() Attr { return flag("required", true) }

// Checked sets the checked flag.
func Checked() Attr { return flag("checked", true) }

// Selected sets the selected flag.
func Selected() Attr { return flag("selected", true) }

// Hidden sets the hidden flag.
func Hidden() Attr { return flag("hidden", true) }

// Accessibility

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// TabIndex sets the tabindex attribute.
func TabIndex(index string) Attr { return attr("tabindex", index) }

// Media

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Conditionals

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
