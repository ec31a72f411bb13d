package htmlconv

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/reconcile-ui/reconcile/pkg/live"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Render serializes a live subtree as HTML. Fragment nodes render their
// children with no wrapper; event listeners have no HTML form and are
// omitted.
func Render(w io.Writer, n *live.Node) error {
	if n.Kind == vtree.KindFragment {
		for _, c := range n.Children {
			if err := Render(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	return html.Render(w, liveToHTML(n))
}

// RenderString renders a live subtree into a string.
func RenderString(n *live.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderVirtual serializes a virtual subtree as HTML, the same way Render
// does for live trees. Keys render as a "key" attribute so a rendered
// fragment parses back with its keys intact.
func RenderVirtual(w io.Writer, n *vtree.Node) error {
	if n.Kind == vtree.KindFragment {
		for _, c := range n.Children {
			if err := RenderVirtual(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	return html.Render(w, virtualToHTML(n))
}

func liveToHTML(n *live.Node) *html.Node {
	switch n.Kind {
	case vtree.KindText:
		return &html.Node{Type: html.TextNode, Data: n.Text}
	case vtree.KindComment:
		return &html.Node{Type: html.CommentNode, Data: n.Text}
	}

	h := &html.Node{Type: html.ElementNode, Data: n.Tag}
	for _, a := range n.Attrs {
		if attr, ok := htmlAttr(a); ok {
			h.Attr = append(h.Attr, attr)
		}
	}
	for _, c := range n.Children {
		if c.Kind == vtree.KindFragment {
			for _, gc := range c.Children {
				h.AppendChild(liveToHTML(gc))
			}
			continue
		}
		h.AppendChild(liveToHTML(c))
	}
	return h
}

func virtualToHTML(n *vtree.Node) *html.Node {
	switch n.Kind {
	case vtree.KindText:
		return &html.Node{Type: html.TextNode, Data: n.Text}
	case vtree.KindComment:
		return &html.Node{Type: html.CommentNode, Data: n.Text}
	}

	h := &html.Node{Type: html.ElementNode, Data: n.Tag}
	if n.Key != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "key", Val: n.Key})
	}
	for _, a := range n.Attrs {
		if attr, ok := htmlAttr(a); ok {
			h.Attr = append(h.Attr, attr)
		}
	}
	for _, c := range n.Children {
		if c.Kind == vtree.KindFragment {
			for _, gc := range c.Children {
				h.AppendChild(virtualToHTML(gc))
			}
			continue
		}
		h.AppendChild(virtualToHTML(c))
	}
	return h
}

// htmlAttr converts one attribute, reporting false when it has no HTML
// form (false flags, event handlers).
func htmlAttr(a vtree.Attr) (html.Attribute, bool) {
	switch a.Value.Kind() {
	case vtree.ValueBool:
		if !a.Value.Flag() {
			return html.Attribute{}, false
		}
		return html.Attribute{Key: a.Name}, true
	case vtree.ValueHandler:
		return html.Attribute{}, false
	default:
		return html.Attribute{Key: a.Name, Val: a.Value.Text()}, true
	}
}
