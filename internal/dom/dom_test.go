package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// find returns the first element named name in document order.
func find(n *Node, name string) *Node {
	if n.Type == ElementNode && n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := find(c, name); f != nil {
			return f
		}
	}
	return nil
}

func TestParseHTML(t *testing.T) {
	root, err := ParseHTML(`<!DOCTYPE html><html><body><p class=" lead  intro " id="first">Hello <!-- note --></p><svg><title>Icon</title></svg></body></html>`)
	require.NoError(t, err)
	assert.True(t, root.IsRoot())
	assert.Equal(t, NonContentNode, root.Children[0].Type)

	p := find(root, "p")
	require.NotNil(t, p)
	assert.False(t, p.HasNamespace)
	assert.Equal(t, []string{"lead", "intro"}, p.Classes)
	assert.Equal(t, "lead intro", p.AttrOr("class", ""))
	assert.Equal(t, "first", p.AttrOr("id", ""))
	require.Len(t, p.Children, 2)
	assert.Equal(t, TextNode, p.Children[0].Type)
	assert.Equal(t, CommentNode, p.Children[1].Type)
	assert.Equal(t, " note ", p.Children[1].Data)
	assert.Same(t, p, p.Children[0].Parent)

	svg := find(root, "svg")
	require.NotNil(t, svg)
	assert.True(t, svg.HasNamespace)
	assert.Equal(t, SVGNamespace, svg.Namespace)
	assert.Equal(t, "svg", svg.Prefix)
}

func TestParseHTML5Namespaces(t *testing.T) {
	root, err := ParseHTML5(`<p>Hi</p>`)
	require.NoError(t, err)

	p := find(root, "p")
	require.NotNil(t, p)
	assert.True(t, p.HasNamespace)
	assert.Equal(t, XHTMLNamespace, p.Namespace)
	assert.Empty(t, p.Prefix)
}

func TestParseXHTML(t *testing.T) {
	src := `<?xml version="1.0" encoding="iso-8859-1"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:x="urn:example">
<body>
<p class="A  b" xml:lang="en">Text<![CDATA[raw]]></p>
<x:note>Remark</x:note>
<!-- said -->
</body>
</html>`
	root, err := ParseXHTML(src)
	require.NoError(t, err)

	p := find(root, "p")
	require.NotNil(t, p)
	assert.True(t, p.HasNamespace)
	assert.Equal(t, XHTMLNamespace, p.Namespace)
	assert.Nil(t, p.Classes)
	assert.Equal(t, "A  b", p.AttrOr("class", ""))
	assert.Equal(t, "en", p.AttrOr("xml:lang", ""))
	require.Len(t, p.Children, 2)
	assert.Equal(t, TextNode, p.Children[0].Type)
	assert.Equal(t, NonContentNode, p.Children[1].Type)

	note := find(root, "note")
	require.NotNil(t, note)
	assert.Equal(t, "x", note.Prefix)
	assert.Equal(t, "urn:example", note.Namespace)

	body := find(root, "body")
	var comments int
	for _, c := range body.Children {
		if c.Type == CommentNode {
			comments++
			assert.Equal(t, " said ", c.Data)
		}
	}
	assert.Equal(t, 1, comments)
}

func TestParseXHTMLMalformed(t *testing.T) {
	_, err := ParseXHTML(`<html><p>x</p>`)
	assert.Error(t, err)
}
