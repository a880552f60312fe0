package selector

import (
	"strings"

	"github.com/mrjoshuak/spellhtml/internal/dom"
)

// RootDescriptor describes the document node itself.
const RootDescriptor = ":root"

// Describe builds a selector-like descriptor for el of the form
// prefix|tag#id.class1.class2, followed by [attr] when attr is not empty.
// Descriptors are for people reading diagnostics; two elements may share one.
func Describe(el *dom.Node, attr string, xml bool) string {
	var b strings.Builder
	if el.IsRoot() {
		b.WriteString(RootDescriptor)
	} else {
		if el.Prefix != "" {
			b.WriteString(el.Prefix)
			b.WriteByte('|')
		}
		b.WriteString(el.Name)
		if id := strings.TrimSpace(el.AttrOr("id", "")); id != "" {
			b.WriteByte('#')
			b.WriteString(id)
		}
		if classes := ClassList(el, xml); len(classes) > 0 {
			b.WriteByte('.')
			b.WriteString(strings.Join(classes, "."))
		}
	}
	if attr != "" {
		b.WriteByte('[')
		b.WriteString(attr)
		b.WriteByte(']')
	}
	return b.String()
}
