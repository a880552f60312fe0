// Package types provides the core data structures for the SpellHTML library.
package types

// Category identifies which part of a document a SourceText came from.
// It is the mode prefix ("html" or "xhtml") followed by the fragment kind.
type Category string

// Fragment kinds appended to the mode prefix to form a Category.
const (
	KindContent   = "content"
	KindAttribute = "attribute"
	KindComment   = "comment"
)

// NewCategory joins a mode prefix and a fragment kind, e.g. "htmlcontent".
func NewCategory(prefix, kind string) Category {
	return Category(prefix + kind)
}

// SourceText is one piece of spellable text extracted from a document.
// Context is the caller's document identifier followed by ": " and a
// selector-like descriptor of where the text was found.
type SourceText struct {
	Text     string   `json:"text"`
	Context  string   `json:"context"`
	Encoding string   `json:"encoding"`
	Category Category `json:"category"`
}
