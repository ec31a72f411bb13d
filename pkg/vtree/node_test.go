package vtree

import "testing"

func TestLookup(t *testing.T) {
	n := Div(ID("main"), Class("wrap"))

	v, ok := n.Lookup("id")
	if !ok || v.Str() != "main" {
		t.Errorf("Lookup(id) = %q, %v", v.Str(), ok)
	}
	if _, ok := n.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) should report absent")
	}
}

func TestSetAttrLastWriteWinsFirstPositionKept(t *testing.T) {
	n := Div(
		Class("first"),
		ID("x"),
		Class("second"),
	)

	if len(n.Attrs) != 2 {
		t.Fatalf("attr count = %d, want 2", len(n.Attrs))
	}
	if n.Attrs[0].Name != "class" || n.Attrs[0].Value.Str() != "second" {
		t.Errorf("Attrs[0] = %s=%q, want class=second", n.Attrs[0].Name, n.Attrs[0].Value.Str())
	}
	if n.Attrs[1].Name != "id" {
		t.Errorf("duplicate write must not move the attribute position")
	}
}

func TestEqualIgnoresAttrOrder(t *testing.T) {
	a := Div(ID("x"), Class("c"))
	b := Div(Class("c"), ID("x"))

	if !Equal(a, b) {
		t.Errorf("attribute order must not affect equality")
	}
}

func TestEqualDistinguishes(t *testing.T) {
	base := Div(Class("c"), Span("hi"))

	for name, other := range map[string]*Node{
		"tag":       Span(Class("c"), Span("hi")),
		"kind":      Text("hi"),
		"key":       Div(Key("k"), Class("c"), Span("hi")),
		"attrs":     Div(Class("d"), Span("hi")),
		"attrCount": Div(Span("hi")),
		"children":  Div(Class("c"), Span("bye")),
		"childLen":  Div(Class("c")),
		"nil":       nil,
	} {
		if Equal(base, other) {
			t.Errorf("%s: trees should differ", name)
		}
	}
}

func TestEqualHandlerIdentity(t *testing.T) {
	cb := NewCallback(func(Event) {})
	a := Button(OnClick(cb))
	b := Button(OnClick(cb))
	c := Button(OnClick(NewCallback(func(Event) {})))

	if !Equal(a, b) {
		t.Errorf("same callback pointer should compare equal")
	}
	if Equal(a, c) {
		t.Errorf("different callback pointers should compare unequal")
	}
}

func TestCloneIsDeepAndDropsBookkeeping(t *testing.T) {
	orig := Div(Class("c"), Ul(Li("a")))
	orig.Ref = 42
	Record(orig)

	c := Clone(orig)

	if !Equal(orig, c) {
		t.Fatalf("clone is not structurally equal")
	}
	if c.Ref != 0 || c.Recorded() != 0 {
		t.Errorf("clone must not carry refs or fingerprints")
	}
	c.Children[0].Children[0].Children[0].Text = "changed"
	if orig.Children[0].Children[0].Children[0].Text != "a" {
		t.Errorf("mutating the clone reached the original")
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	tree := Div(Span("a"), P(Strong("b")))

	var tags []string
	Walk(tree, func(n *Node) {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
	})

	want := []string{"div", "span", "p", "strong"}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("visited %v, want %v", tags, want)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d", got)
	}
	// div, span, text, p, text
	tree := Div(Span("a"), P("b"))
	if got := Count(tree); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}
