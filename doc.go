// Package spellhtml extracts the human-readable text of HTML and XHTML
// documents for spell checking. Text is grouped into content blocks,
// attribute values and comments, and every fragment carries a short
// selector-like descriptor of the element it came from.
//
// Usage:
//
//	import "github.com/mrjoshuak/spellhtml"
//
//	// Create a filter
//	filter, err := spellhtml.New(
//	    spellhtml.WithAttributes("alt", "title"),
//	    spellhtml.WithIgnores("code", "pre.nospell"),
//	)
//
//	// Filter a file; the encoding is sniffed from its bytes
//	texts, err := filter.FilterFile("index.html", "")
//
//	for _, t := range texts {
//	    fmt.Println(t.Context, t.Text)
//	}
//
// Modes:
//
// Documents are parsed as forgiving HTML by default. ModeHTML5 builds the
// tree the way browsers do and places HTML elements in the XHTML namespace.
// ModeXHTML parses well-formed XML and makes tag, attribute and class
// comparisons case-sensitive.
//
// Ignore selectors:
//
// Each ignore entry is a compound selector without combinators, such as
// "div.note", "#toc", "svg|text" or `a[href^="http"]`. A matching element is
// skipped together with its subtree. Script and style elements are always
// skipped.
package spellhtml
