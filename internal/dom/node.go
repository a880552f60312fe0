// Package dom is the read-only view of a parsed markup tree that text
// extraction works on. Parser adapters build it from golang.org/x/net/html
// trees (html and html5 modes) and from github.com/beevik/etree documents
// (xhtml mode), so extraction never depends on a parser's own node types.
package dom

import "strings"

// NodeType is the closed set of node variants.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	// NonContentNode covers doctypes, declarations, CDATA sections and
	// processing instructions. Their text is never extracted.
	NonContentNode
)

// Attribute is a single attribute. Multi-valued HTML attributes such as
// class carry their tokens joined by single spaces.
type Attribute struct {
	Name  string
	Value string
}

// Node is one node of a parsed document.
type Node struct {
	Type NodeType

	// Name is the tag name for elements.
	Name string
	// Namespace is the namespace URI of an element. HasNamespace is false
	// when the parser assigns none.
	Namespace    string
	HasNamespace bool
	// Prefix is the namespace prefix shown in descriptors, if any.
	Prefix string

	Attrs []Attribute
	// Classes is the class list when the parser tokenizes it. It is nil in
	// xhtml mode, where the class attribute is split on demand.
	Classes []string

	// Data is the text of text and comment nodes.
	Data string

	Parent   *Node
	Children []*Node
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute or def when it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// IsRoot reports whether n is the document node.
func (n *Node) IsRoot() bool {
	return n.Type == DocumentNode
}

// appendChild links child under n.
func (n *Node) appendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// multiValued lists the HTML attributes whose values are space-separated
// token lists.
var multiValued = map[string]bool{
	"class":          true,
	"rel":            true,
	"rev":            true,
	"accept-charset": true,
	"headers":        true,
	"accesskey":      true,
	"dropzone":       true,
}

// tokenize splits a multi-valued attribute on runs of whitespace.
func tokenize(v string) []string {
	return strings.Fields(v)
}
