package htmlconv

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	reerrors "github.com/reconcile-ui/reconcile/internal/errors"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Parse reads an HTML fragment and converts it into a virtual tree. A
// fragment with a single top-level element becomes that element; multiple
// top-level nodes are wrapped in a fragment node. Whitespace-only text
// between elements is dropped.
func Parse(r io.Reader) (*vtree.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	roots, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, reerrors.FromError(err, reerrors.CodeParseFailed)
	}

	var children []*vtree.Node
	for _, root := range roots {
		if n := convert(root); n != nil {
			children = append(children, n)
		}
	}
	switch len(children) {
	case 0:
		return nil, reerrors.New(reerrors.CodeParseFailed).
			WithDetail("fragment contains no renderable nodes")
	case 1:
		return children[0], nil
	default:
		return vtree.Fragment(children), nil
	}
}

// ParseString is Parse over an in-memory fragment.
func ParseString(s string) (*vtree.Node, error) {
	return Parse(strings.NewReader(s))
}

// convert maps one parsed node into a virtual node, returning nil for
// nodes that have no virtual representation.
func convert(n *html.Node) *vtree.Node {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return vtree.Text(n.Data)

	case html.CommentNode:
		return vtree.Comment(n.Data)

	case html.ElementNode:
		args := make([]any, 0, len(n.Attr))
		for _, a := range n.Attr {
			args = append(args, convertAttr(a))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				args = append(args, child)
			}
		}
		return vtree.El(n.Data, args...)

	default:
		return nil
	}
}

// convertAttr maps a parsed attribute. Boolean attributes keep their HTML
// presence semantics; everything else is a plain string value.
func convertAttr(a html.Attribute) vtree.Attr {
	if a.Key == "key" {
		return vtree.Key(a.Val)
	}
	if booleanAttrs[a.Key] {
		return vtree.Attr{Name: a.Key, Value: vtree.BoolValue(true)}
	}
	return vtree.Attr{Name: a.Key, Value: vtree.StringValue(a.Val)}
}

// booleanAttrs are attributes whose presence alone carries the value.
var booleanAttrs = map[string]bool{
	"disabled":  true,
	"readonly":  true,
	"required":  true,
	"checked":   true,
	"selected":  true,
	"hidden":    true,
	"autofocus": true,
	"multiple":  true,
	"open":      true,
}
