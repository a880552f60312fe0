package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Namespace URIs reported for HTML and foreign content.
const (
	XHTMLNamespace  = "http://www.w3.org/1999/xhtml"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
)

var foreignNamespaces = map[string]string{
	"svg":  SVGNamespace,
	"math": MathMLNamespace,
}

// ParseHTML parses text as HTML. HTML elements carry no namespace; SVG and
// MathML elements carry their namespace URI and a svg/math prefix.
func ParseHTML(text string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return FromHTMLNode(doc.Nodes[0], false), nil
}

// ParseHTML5 parses text as HTML5. Unlike ParseHTML, HTML elements are
// placed in the XHTML namespace, the way browsers build HTML5 trees.
func ParseHTML5(text string) (*Node, error) {
	doc, err := htmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return FromHTMLNode(doc, true), nil
}

// FromHTMLNode converts an x/net/html tree. When htmlNamespace is set,
// HTML elements report the XHTML namespace URI.
func FromHTMLNode(n *html.Node, htmlNamespace bool) *Node {
	out := &Node{}
	switch n.Type {
	case html.DocumentNode:
		out.Type = DocumentNode
	case html.ElementNode:
		out.Type = ElementNode
		out.Name = n.Data
		if uri, ok := foreignNamespaces[n.Namespace]; ok {
			out.Namespace, out.HasNamespace = uri, true
			out.Prefix = n.Namespace
		} else if htmlNamespace {
			out.Namespace, out.HasNamespace = XHTMLNamespace, true
		}
		out.Attrs, out.Classes = htmlAttributes(n.Attr)
	case html.TextNode:
		out.Type = TextNode
		out.Data = n.Data
	case html.CommentNode:
		out.Type = CommentNode
		out.Data = n.Data
	default:
		out.Type = NonContentNode
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.appendChild(FromHTMLNode(c, htmlNamespace))
	}
	return out
}

func htmlAttributes(attrs []html.Attribute) ([]Attribute, []string) {
	if len(attrs) == 0 {
		return nil, nil
	}
	var classes []string
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		value := a.Val
		if multiValued[name] {
			tokens := tokenize(value)
			value = strings.Join(tokens, " ")
			if name == "class" {
				classes = tokens
			}
		}
		out = append(out, Attribute{Name: name, Value: value})
	}
	return out, classes
}
