// Package extractors walks a parsed document and sorts its visible text into
// content blocks, attribute values and comments.
package extractors

import (
	"strings"

	"github.com/mrjoshuak/spellhtml/internal/dom"
	"github.com/mrjoshuak/spellhtml/internal/selector"
)

// CommentSuffix is appended to the parent descriptor of a comment.
const CommentSuffix = "<!--comment-->"

// Fragment is a piece of extracted text and the descriptor of where it
// was found.
type Fragment struct {
	Text       string
	Descriptor string
}

// Result holds the three disjoint categories of extracted text, each in
// document order.
type Result struct {
	Blocks     []Fragment
	Attributes []Fragment
	Comments   []Fragment
}

// Config controls a walk. Rules must not be nil.
type Config struct {
	Rules      *selector.RuleSet
	Comments   bool
	Attributes []string
	XML        bool
}

// partial is what a subtree contributes: finished fragments plus inline
// text that has not reached a block boundary yet.
type partial struct {
	Result
	pending []string
}

func (p *partial) merge(child partial) {
	p.pending = append(p.pending, child.pending...)
	p.Blocks = append(p.Blocks, child.Blocks...)
	p.Attributes = append(p.Attributes, child.Attributes...)
	p.Comments = append(p.Comments, child.Comments...)
}

// ExtractText walks the tree under root. Skipped elements contribute
// nothing, not even their attributes. Inline text is gathered until the
// nearest enclosing block element, or the root, and emitted there as one
// block. The walk recurses once per nesting level, so the depth of the
// document bounds stack use.
func ExtractText(root *dom.Node, cfg Config) Result {
	w := walker{cfg: cfg}
	out := w.walk(root)
	if !root.IsRoot() {
		return out.Result
	}
	if text := JoinInline(out.pending); text != "" {
		out.Blocks = append(out.Blocks, Fragment{Text: text, Descriptor: w.describe(root, "")})
	}
	return out.Result
}

type walker struct {
	cfg Config
}

func (w *walker) describe(n *dom.Node, attr string) string {
	return selector.Describe(n, attr, w.cfg.XML)
}

func (w *walker) walk(n *dom.Node) partial {
	var out partial

	if !n.IsRoot() {
		if w.cfg.Rules.ShouldSkip(n) {
			return out
		}
		for _, attr := range w.cfg.Attributes {
			if v := strings.TrimSpace(n.AttrOr(attr, "")); v != "" {
				out.Attributes = append(out.Attributes, Fragment{Text: Unescape(v), Descriptor: w.describe(n, attr)})
			}
		}
	}

	for _, c := range n.Children {
		switch c.Type {
		case dom.ElementNode:
			out.merge(w.walk(c))
		case dom.TextNode:
			if s := strings.TrimSpace(c.Data); s != "" {
				out.pending = append(out.pending, s)
			}
		case dom.CommentNode:
			if !w.cfg.Comments {
				continue
			}
			if s := strings.TrimSpace(c.Data); s != "" {
				out.Comments = append(out.Comments, Fragment{Text: Unescape(s), Descriptor: w.describe(n, "") + CommentSuffix})
			}
		}
	}

	if n.Type == dom.ElementNode && IsBlock(n.Name) {
		if text := JoinInline(out.pending); text != "" {
			out.Blocks = append(out.Blocks, Fragment{Text: text, Descriptor: w.describe(n, "")})
		}
		out.pending = nil
	}
	return out
}
