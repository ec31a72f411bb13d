package vtree

import "testing"

func TestAttrValueEqual(t *testing.T) {
	cb := NewCallback(func(Event) {})

	tests := []struct {
		name string
		a, b AttrValue
		want bool
	}{
		{"same string", StringValue("x"), StringValue("x"), true},
		{"diff string", StringValue("x"), StringValue("y"), false},
		{"same bool", BoolValue(true), BoolValue(true), true},
		{"diff bool", BoolValue(true), BoolValue(false), false},
		{"kind mismatch", StringValue("true"), BoolValue(true), false},
		{
			"same style",
			StyleValue(StyleProp{"color", "red"}, StyleProp{"width", "1px"}),
			StyleValue(StyleProp{"color", "red"}, StyleProp{"width", "1px"}),
			true,
		},
		{
			"style order matters",
			StyleValue(StyleProp{"color", "red"}, StyleProp{"width", "1px"}),
			StyleValue(StyleProp{"width", "1px"}, StyleProp{"color", "red"}),
			false,
		},
		{"same handler", HandlerValue(cb), HandlerValue(cb), true},
		{"diff handler", HandlerValue(cb), HandlerValue(NewCallback(func(Event) {})), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal is not symmetric")
			}
		})
	}
}

func TestAttrValueText(t *testing.T) {
	style := StyleValue(StyleProp{"color", "red"}, StyleProp{"width", "1px"})
	if got := style.Text(); got != "color: red; width: 1px" {
		t.Errorf("style text = %q", got)
	}
	if got := StringValue("v").Text(); got != "v" {
		t.Errorf("string text = %q", got)
	}
	if got := BoolValue(true).Text(); got != "" {
		t.Errorf("flag text = %q, presence carries the meaning", got)
	}
	if got := HandlerValue(NewCallback(func(Event) {})).Text(); got != "" {
		t.Errorf("handler text = %q", got)
	}
}

func TestCallbackInvoke(t *testing.T) {
	var got Event
	cb := NewCallback(func(e Event) { got = e })

	cb.Invoke(Event{Type: "click", Target: 7, Value: "v"})
	if got.Type != "click" || got.Target != 7 || got.Value != "v" {
		t.Errorf("handler received %+v", got)
	}

	// Nil callbacks are inert.
	var nilCb *Callback
	nilCb.Invoke(Event{Type: "click"})
}
