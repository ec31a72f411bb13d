package live

import (
	"testing"

	reerrors "github.com/reconcile-ui/reconcile/internal/errors"
	"github.com/reconcile-ui/reconcile/pkg/patch"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

func logOf(patches ...patch.Patch) *patch.Log {
	log := patch.NewLog()
	for _, p := range patches {
		log.Append(p)
	}
	return log
}

func mustApply(t *testing.T, p *Patcher, log *patch.Log) {
	t.Helper()
	if err := p.Apply(log); err != nil {
		t.Fatalf("apply: %v", err)
	}
}

func TestApplyInsertMaterializes(t *testing.T) {
	p := NewPatcher()
	tree := vtree.Div(vtree.Class("card"),
		vtree.H1("Title"),
		vtree.P("Body"),
	)

	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	root := p.Root()
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	div := root.Children[0]
	if div.Tag != "div" || len(div.Children) != 2 {
		t.Fatalf("unexpected shape: tag=%q children=%d", div.Tag, len(div.Children))
	}
	if v, ok := div.Attr("class"); !ok || v.Text() != "card" {
		t.Errorf("class attr not materialized")
	}

	// Refs are written back into the virtual tree and resolvable.
	if tree.Ref == 0 {
		t.Fatalf("virtual root did not receive a ref")
	}
	got, ok := p.Index().Resolve(tree.Ref)
	if !ok || got != div {
		t.Errorf("index does not resolve the virtual root's ref")
	}
	if tree.Children[1].Ref == 0 {
		t.Errorf("descendants did not receive refs")
	}
}

func TestApplyTextAndAttrs(t *testing.T) {
	p := NewPatcher()
	tree := vtree.P(vtree.Class("note"), "old")
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	mustApply(t, p, logOf(
		patch.NewSetText(tree.Children[0].Ref, "new"),
		patch.NewSetAttr(tree.Ref, "class", vtree.StringValue("warn")),
		patch.NewSetAttr(tree.Ref, "role", vtree.StringValue("alert")),
		patch.NewRemoveAttr(tree.Ref, "role"),
	))

	para := p.Root().Children[0]
	if para.Children[0].Text != "new" {
		t.Errorf("Text = %q, want new", para.Children[0].Text)
	}
	if v, _ := para.Attr("class"); v.Text() != "warn" {
		t.Errorf("class = %q, want warn", v.Text())
	}
	if _, ok := para.Attr("role"); ok {
		t.Errorf("role should have been removed")
	}
}

func TestApplyMissingTargetFailsAndFlagsCorrupt(t *testing.T) {
	p := NewPatcher()

	err := p.Apply(logOf(patch.NewSetText(999, "ghost")))
	if err == nil {
		t.Fatalf("expected error for unknown ref")
	}
	if code := reerrors.CodeOf(err); code != reerrors.CodePatchTargetMissing {
		t.Errorf("code = %q, want %q", code, reerrors.CodePatchTargetMissing)
	}
	if !p.Corrupt() {
		t.Errorf("tree should be flagged corrupt")
	}

	// Further applies are refused until a reset.
	err = p.Apply(logOf(patch.NewSetText(patch.RootRef, "x")))
	if code := reerrors.CodeOf(err); code != reerrors.CodeTreeCorrupt {
		t.Errorf("code = %q, want %q", code, reerrors.CodeTreeCorrupt)
	}

	p.Reset()
	if p.Corrupt() {
		t.Errorf("reset should clear the corrupt flag")
	}
	if p.Index().Len() != 1 {
		t.Errorf("reset index has %d entries, want only the mount container", p.Index().Len())
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	p := NewPatcher()
	tree := vtree.Div()
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	err := p.Apply(logOf(
		patch.NewSetAttr(tree.Ref, "id", vtree.StringValue("kept")),
		patch.NewSetText(999, "ghost"),
		patch.NewSetAttr(tree.Ref, "id", vtree.StringValue("never")),
	))
	if err == nil {
		t.Fatalf("expected error")
	}
	// Patches before the failure stay applied; patches after are skipped.
	if v, _ := p.Root().Children[0].Attr("id"); v.Text() != "kept" {
		t.Errorf("id = %q, want kept", v.Text())
	}
}

func TestApplyRemoveDeregistersSubtree(t *testing.T) {
	p := NewPatcher()
	tree := vtree.Ul(vtree.Li("a"), vtree.Li("b"))
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	before := p.Index().Len()
	mustApply(t, p, logOf(patch.NewRemoveNode(tree.Ref)))

	// The list, both items, and their text nodes all leave the index.
	if got := p.Index().Len(); got != before-5 {
		t.Errorf("index len = %d, want %d", got, before-5)
	}
	if len(p.Root().Children) != 0 {
		t.Errorf("root still has children")
	}
	if _, ok := p.Index().Resolve(tree.Children[0].Ref); ok {
		t.Errorf("removed descendant still resolvable")
	}
}

func TestApplyReorderKeepsIdentity(t *testing.T) {
	p := NewPatcher()
	tree := vtree.Ul(vtree.Li("a"), vtree.Li("b"), vtree.Li("c"))
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	list := p.Root().Children[0]
	a, b, c := list.Children[0], list.Children[1], list.Children[2]

	mustApply(t, p, logOf(patch.NewReorderChildren(tree.Ref, []int{2, 0, 1})))

	if list.Children[0] != c || list.Children[1] != a || list.Children[2] != b {
		t.Errorf("children were not permuted in place")
	}
}

func TestApplyReorderRejectsBadPermutation(t *testing.T) {
	tree := vtree.Ul(vtree.Li("a"), vtree.Li("b"))

	for _, perm := range [][]int{
		{0},       // wrong length
		{0, 0},    // repeated index
		{0, 5},    // out of range
		{-1, 0},   // negative
		{0, 1, 2}, // too long
	} {
		fresh := NewPatcher()
		clone := vtree.Clone(tree)
		mustApply(t, fresh, logOf(patch.NewInsertNode(patch.RootRef, 0, clone)))
		if err := fresh.Apply(logOf(patch.NewReorderChildren(clone.Ref, perm))); err == nil {
			t.Errorf("perm %v should be rejected", perm)
		}
	}
}

func TestApplyReplaceNode(t *testing.T) {
	p := NewPatcher()
	tree := vtree.Div(vtree.Span("old"))
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))
	oldRef := tree.Children[0].Ref

	replacement := vtree.Strong("new")
	mustApply(t, p, logOf(patch.NewReplaceNode(oldRef, replacement)))

	div := p.Root().Children[0]
	if div.Children[0].Tag != "strong" {
		t.Errorf("tag = %q, want strong", div.Children[0].Tag)
	}
	if _, ok := p.Index().Resolve(oldRef); ok {
		t.Errorf("replaced node still resolvable")
	}
	if _, ok := p.Index().Resolve(replacement.Ref); !ok {
		t.Errorf("replacement not resolvable")
	}
}

func TestApplyListenersAndDispatch(t *testing.T) {
	p := NewPatcher()
	var fired []string
	cb := vtree.NewCallback(func(e vtree.Event) {
		fired = append(fired, e.Value)
	})

	tree := vtree.Button(vtree.OnClick(cb), "go")
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	button := p.Root().Children[0]
	// Event attributes never materialize as plain attributes.
	if _, ok := button.Attr("onclick"); ok {
		t.Errorf("onclick should be a listener, not an attribute")
	}
	if button.ListenerCount() != 1 {
		t.Fatalf("listener count = %d, want 1", button.ListenerCount())
	}

	p.Dispatch(tree.Ref, "click", "first")
	if len(fired) != 1 || fired[0] != "first" {
		t.Fatalf("dispatch did not invoke the handler: %v", fired)
	}

	// Unknown refs and missing listeners are silently dropped.
	p.Dispatch(9999, "click", "ghost")
	p.Dispatch(tree.Ref, "keydown", "ghost")
	if len(fired) != 1 {
		t.Errorf("unexpected handler invocations: %v", fired)
	}

	mustApply(t, p, logOf(patch.NewRemoveListener(tree.Ref, "click")))
	p.Dispatch(tree.Ref, "click", "after-remove")
	if len(fired) != 1 {
		t.Errorf("removed listener still fired")
	}
}

func TestApplyRejectsNilNodePayload(t *testing.T) {
	// A nil subtree survives the wire codec, so a crafted or corrupt
	// recorded log must fail the apply instead of crashing it.
	frame := patch.EncodeLog(logOf(patch.NewInsertNode(patch.RootRef, 0, nil)))
	decoded, err := patch.DecodeLog(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	p := NewPatcher()
	if err := p.Apply(decoded); err == nil {
		t.Fatalf("nil insert payload must fail")
	}
	if !p.Corrupt() {
		t.Errorf("failed apply should flag the tree corrupt")
	}

	p = NewPatcher()
	tree := vtree.Div(vtree.Span("old"))
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))
	if err := p.Apply(logOf(patch.NewReplaceNode(tree.Children[0].Ref, nil))); err == nil {
		t.Fatalf("nil replace payload must fail")
	}
}

func TestApplyOutOfOrderReplayFails(t *testing.T) {
	seed := NewPatcher()
	tree := vtree.Div()
	mustApply(t, seed, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	insert := patch.NewInsertNode(patch.RootRef, 0, vtree.Div())
	set := patch.NewSetAttr(tree.Ref, "id", vtree.StringValue("x"))

	// In emission order the log replays on a fresh tree: the insert
	// creates the node the attribute patch addresses.
	if err := NewPatcher().Apply(logOf(insert, set)); err != nil {
		t.Fatalf("ordered replay: %v", err)
	}

	// Swapped, the attribute patch addresses a node that does not exist yet.
	err := NewPatcher().Apply(logOf(set, insert))
	if code := reerrors.CodeOf(err); code != reerrors.CodePatchTargetMissing {
		t.Errorf("code = %q, want %q", code, reerrors.CodePatchTargetMissing)
	}
}

func TestApplyInsertIndexClamped(t *testing.T) {
	p := NewPatcher()
	tree := vtree.Ul(vtree.Li("a"))
	mustApply(t, p, logOf(patch.NewInsertNode(patch.RootRef, 0, tree)))

	mustApply(t, p, logOf(patch.NewInsertNode(tree.Ref, 99, vtree.Li("z"))))

	list := p.Root().Children[0]
	if len(list.Children) != 2 {
		t.Fatalf("child count = %d, want 2", len(list.Children))
	}
	if list.Children[1].Children[0].Text != "z" {
		t.Errorf("out-of-range insert should clamp to append")
	}
}
