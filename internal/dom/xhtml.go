package dom

import (
	"io"

	"github.com/beevik/etree"
)

// ParseXHTML parses text as XML. The text is already decoded, so any
// encoding named in its XML declaration is ignored. Parsing is permissive:
// undeclared HTML entities are left in the text for later unescaping.
func ParseXHTML(text string) (*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.PreserveCData = true
	doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}

	root := &Node{Type: DocumentNode}
	for _, tok := range doc.Child {
		root.appendChild(fromToken(tok))
	}
	return root, nil
}

func fromToken(tok etree.Token) *Node {
	switch t := tok.(type) {
	case *etree.Element:
		return fromElement(t)
	case *etree.CharData:
		if t.IsCData() {
			return &Node{Type: NonContentNode, Data: t.Data}
		}
		return &Node{Type: TextNode, Data: t.Data}
	case *etree.Comment:
		return &Node{Type: CommentNode, Data: t.Data}
	default:
		return &Node{Type: NonContentNode}
	}
}

func fromElement(e *etree.Element) *Node {
	out := &Node{
		Type:   ElementNode,
		Name:   e.Tag,
		Prefix: e.Space,
	}
	if uri := e.NamespaceURI(); uri != "" {
		out.Namespace, out.HasNamespace = uri, true
	}
	if len(e.Attr) > 0 {
		out.Attrs = make([]Attribute, 0, len(e.Attr))
		for _, a := range e.Attr {
			name := a.Key
			if a.Space != "" {
				name = a.Space + ":" + a.Key
			}
			out.Attrs = append(out.Attrs, Attribute{Name: name, Value: a.Value})
		}
	}
	for _, tok := range e.Child {
		out.appendChild(fromToken(tok))
	}
	return out
}
