package vtree

import (
	"testing"

	"github.com/reconcile-ui/reconcile/pkg/intern"
)

func TestFingerprintStructuralOnly(t *testing.T) {
	base := Fingerprint(Div(Class("a"), Span("hello")))

	// Attribute values and text do not participate.
	if got := Fingerprint(Div(Class("b"), Span("world"))); got != base {
		t.Errorf("attr/text changes must not move the fingerprint")
	}

	// Shape, tags, and keys do.
	if got := Fingerprint(Div(Class("a"), P("hello"))); got == base {
		t.Errorf("child tag change should move the fingerprint")
	}
	if got := Fingerprint(Div(Class("a"), Span("hello"), Span("x"))); got == base {
		t.Errorf("child count change should move the fingerprint")
	}
	if got := Fingerprint(Div(Key("k"), Class("a"), Span("hello"))); got == base {
		t.Errorf("key change should move the fingerprint")
	}
}

func TestRecord(t *testing.T) {
	tree := Div(Ul(Li("a")))
	if tree.Recorded() != 0 {
		t.Fatalf("fresh tree should have no recorded fingerprint")
	}

	root := Record(tree)

	if root == 0 || tree.Recorded() != root {
		t.Errorf("root fingerprint not recorded")
	}
	if tree.Children[0].Recorded() != Fingerprint(tree.Children[0]) {
		t.Errorf("descendant fingerprints not recorded")
	}
}

func TestInternFillsElementSymbols(t *testing.T) {
	table := intern.NewTable()
	tree := Div(Span("x"), Div())

	Intern(table, tree)

	if tree.TagSym == intern.None {
		t.Fatalf("root tag not interned")
	}
	if tree.Children[1].TagSym != tree.TagSym {
		t.Errorf("same tag should intern to the same symbol")
	}
	if tree.Children[0].TagSym == tree.TagSym {
		t.Errorf("different tags must not share a symbol")
	}
	// Text nodes have no tag.
	if tree.Children[0].Children[0].TagSym != intern.None {
		t.Errorf("text node should not be interned")
	}
}

func TestCopyRefs(t *testing.T) {
	src := Div(Span("a"), P("b"))
	src.Ref = 10
	src.Children[0].Ref = 11
	src.Children[1].Ref = 12

	dst := Div(Span("a"), P("b"))
	if !CopyRefs(src, dst) {
		t.Fatalf("identical shapes should copy")
	}
	if dst.Ref != 10 || dst.Children[0].Ref != 11 || dst.Children[1].Ref != 12 {
		t.Errorf("refs not propagated: %d %d %d", dst.Ref, dst.Children[0].Ref, dst.Children[1].Ref)
	}

	// Shape mismatch refuses instead of guessing.
	if CopyRefs(src, Div(Span("a"))) {
		t.Errorf("child count mismatch should refuse")
	}
	if CopyRefs(src, Text("a")) {
		t.Errorf("kind mismatch should refuse")
	}
}
