package extractors

import "strings"

// blockTags are the elements whose text forms a paragraph of its own.
// Inline text collected below one of them is emitted as a single block.
var blockTags = map[string]bool{}

func init() {
	for _, tag := range []string{
		// Block level elements
		"address", "article", "aside", "blockquote", "details", "dialog", "dd",
		"div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "hgroup", "hr", "li",
		"main", "menu", "nav", "ol", "p", "pre", "section", "table", "ul",
		// Other blockish elements
		"canvas", "group", "iframe", "math", "noscript", "output",
		"script", "style", "video", "body", "head",
	} {
		blockTags[tag] = true
	}
}

// IsBlock reports whether an element with the given tag name ends a block.
func IsBlock(name string) bool {
	return blockTags[strings.ToLower(name)]
}
