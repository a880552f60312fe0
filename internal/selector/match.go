package selector

import (
	"strings"

	"github.com/mrjoshuak/spellhtml/internal/dom"
)

// ShouldSkip reports whether el matches any rule. A skipped element is
// excluded together with its whole subtree. The document node is never
// skipped.
func (rs *RuleSet) ShouldSkip(el *dom.Node) bool {
	if el.Type != dom.ElementNode {
		return false
	}
	for i := range rs.rules {
		if rs.rules[i].matches(el, rs.xml) {
			return true
		}
	}
	return false
}

// Matches reports whether el satisfies every part of the rule.
func (r *Rule) Matches(el *dom.Node, xml bool) bool {
	return el.Type == dom.ElementNode && r.matches(el, xml)
}

func (r *Rule) matches(el *dom.Node, xml bool) bool {
	if r.HasNamespace && r.Namespace != "*" {
		if el.HasNamespace {
			if el.Namespace != r.Namespace {
				return false
			}
		} else if r.Namespace != "" {
			return false
		}
	}

	if r.Tag != "" && r.Tag != "*" {
		name := el.Name
		if !xml {
			name = strings.ToLower(name)
		}
		if name != r.Tag {
			return false
		}
	}

	if r.ID != "" && r.ID != strings.ToLower(el.AttrOr("id", "")) {
		return false
	}

	if len(r.Classes) > 0 {
		have := make(map[string]bool)
		for _, c := range ClassList(el, xml) {
			have[strings.ToLower(c)] = true
		}
		for _, c := range r.Classes {
			if !have[c] {
				return false
			}
		}
	}

	for _, p := range r.Attributes {
		v, _ := el.Attr(p.Name)
		if v == "" {
			return false
		}
		if p.Pattern != nil && !p.Pattern.MatchString(v) {
			return false
		}
	}
	return true
}

// ClassList returns the classes of el. HTML trees carry a tokenized list;
// in XML mode the class attribute is split on single spaces.
func ClassList(el *dom.Node, xml bool) []string {
	if !xml {
		return el.Classes
	}
	var out []string
	for _, c := range strings.Split(strings.TrimSpace(el.AttrOr("class", "")), " ") {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
