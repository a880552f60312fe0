package selector

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InvalidSelectorError reports a selector that does not scan completely.
type InvalidSelectorError struct {
	Selector string
	Offset   int
	Reason   string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q at offset %d: %s", e.Selector, e.Offset, e.Reason)
}

// tokenKind is one of the four token classes, in the order they are tried.
type tokenKind int

const (
	tokClassOrID tokenKind = iota
	tokTag
	tokAttribute
)

type token struct {
	kind tokenKind
	text string // full token text

	// tag tokens
	namespace    string
	hasNamespace bool
	tag          string

	// attribute tokens
	attr  string
	op    string
	value string
}

// Compile turns selector strings into a RuleSet. The style and script rules
// are always included. Selectors naming none of tag, id or class are
// dropped. In HTML modes (xml false) tags and attribute names are folded to
// lower case; ids and classes are always folded.
func Compile(selectors []string, xml bool) (*RuleSet, error) {
	rs := &RuleSet{xml: xml}
	rs.rules = append(rs.rules, builtinRules...)

	for _, sel := range selectors {
		rule, keep, err := compileOne(sel, xml)
		if err != nil {
			return nil, err
		}
		if keep {
			rs.rules = append(rs.rules, rule)
		}
	}
	return rs, nil
}

func compileOne(sel string, xml bool) (Rule, bool, error) {
	var (
		rule    Rule
		hasTag  bool
		classes = map[string]bool{}
	)

	tokens, err := scan(sel)
	if err != nil {
		return rule, false, err
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokClassOrID:
			name := strings.ToLower(tok.text[1:])
			if tok.text[0] == '.' {
				if !classes[name] {
					classes[name] = true
					rule.Classes = append(rule.Classes, name)
				}
			} else if rule.ID == "" {
				// The first id wins.
				rule.ID = name
			}
		case tokTag:
			if hasTag {
				return rule, false, &InvalidSelectorError{Selector: sel, Reason: "more than one tag in " + tok.text}
			}
			hasTag = true
			rule.Tag = tok.tag
			if !xml {
				rule.Tag = strings.ToLower(rule.Tag)
			}
			rule.Namespace, rule.HasNamespace = tok.namespace, tok.hasNamespace
		case tokAttribute:
			name := tok.attr
			if !xml {
				name = strings.ToLower(name)
			}
			rule.Attributes = append(rule.Attributes, AttributePredicate{
				Name:    name,
				Pattern: attributePattern(tok.op, tok.value),
			})
		}
	}

	keep := rule.Tag != "" || rule.ID != "" || len(rule.Classes) > 0
	return rule, keep, nil
}

// attributePattern builds the regular expression for an operator. The
// patterns are matched against the whole attribute value.
func attributePattern(op, value string) *regexp.Regexp {
	v := regexp.QuoteMeta(value)
	var expr string
	switch op {
	case "":
		return nil
	case "^=":
		expr = `^` + v
	case "$=":
		expr = v + `$`
	case "*=":
		expr = v
	case "~=":
		expr = `(?:^| )` + v + `(?: |$)`
	case "|=":
		expr = `^` + v + `-`
	default:
		expr = `^` + v + `$`
	}
	return regexp.MustCompile(`(?s)` + expr)
}

// scan splits a selector into tokens, failing on the first position no
// token class accepts.
func scan(sel string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(sel); {
		tok, n := scanClassOrID(sel[i:])
		if n == 0 {
			tok, n = scanTag(sel[i:])
		}
		if n == 0 {
			tok, n = scanAttribute(sel[i:])
		}
		if n == 0 {
			return nil, &InvalidSelectorError{Selector: sel, Offset: i, Reason: fmt.Sprintf("unexpected %q", sel[i:])}
		}
		tokens = append(tokens, tok)
		i += n
	}
	return tokens, nil
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// span returns the length of the longest prefix of s whose runes satisfy ok.
func span(s string, ok func(rune) bool) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !ok(r) {
			break
		}
		n += size
	}
	return n
}

func isNameRune(r rune) bool {
	return r == '-' || isWord(r)
}

func isTagRune(r rune) bool {
	return r == ':' || isNameRune(r)
}

// scanClassOrID accepts .class and #id.
func scanClassOrID(s string) (token, int) {
	if s == "" || (s[0] != '.' && s[0] != '#') {
		return token{}, 0
	}
	n := span(s[1:], isNameRune)
	if n == 0 {
		return token{}, 0
	}
	return token{kind: tokClassOrID, text: s[:n+1]}, n + 1
}

// nameOrStar accepts a name made of runes satisfying ok, or a lone "*".
func nameOrStar(s string, ok func(rune) bool) int {
	if strings.HasPrefix(s, "*") {
		return 1
	}
	return span(s, ok)
}

// scanTag accepts ns|tag, tag, * and |*.
func scanTag(s string) (token, int) {
	if ns := nameOrStar(s, isNameRune); ns > 0 && ns < len(s) && s[ns] == '|' {
		if t := nameOrStar(s[ns+1:], isTagRune); t > 0 {
			n := ns + 1 + t
			return token{
				kind:         tokTag,
				text:         s[:n],
				namespace:    s[:ns],
				hasNamespace: true,
				tag:          s[ns+1 : n],
			}, n
		}
	}
	if t := nameOrStar(s, isTagRune); t > 0 {
		return token{kind: tokTag, text: s[:t], tag: s[:t]}, t
	}
	if strings.HasPrefix(s, "|*") {
		return token{kind: tokTag, text: "|*", hasNamespace: true, tag: "*"}, 2
	}
	return token{}, 0
}

// scanAttribute accepts [name] and [name OP value] where value is double
// quoted, single quoted or a bare run without quotes or brackets.
func scanAttribute(s string) (token, int) {
	if !strings.HasPrefix(s, "[") {
		return token{}, 0
	}
	i := 1
	name := span(s[i:], func(r rune) bool { return r == ':' || r == '-' || isWord(r) })
	if name == 0 {
		return token{}, 0
	}
	tok := token{kind: tokAttribute, attr: s[i : i+name]}
	i += name

	if i < len(s) && s[i] != ']' {
		switch {
		case strings.HasPrefix(s[i:], "="):
			tok.op = "="
		case len(s) > i+1 && strings.ContainsRune("~^|*$", rune(s[i])) && s[i+1] == '=':
			tok.op = s[i : i+2]
		default:
			return token{}, 0
		}
		i += len(tok.op)

		value, n := scanValue(s[i:])
		if n == 0 {
			return token{}, 0
		}
		tok.value = value
		i += n
	}

	if i >= len(s) || s[i] != ']' {
		return token{}, 0
	}
	i++
	tok.text = s[:i]
	return tok, i
}

func scanValue(s string) (string, int) {
	if s == "" {
		return "", 0
	}
	if q := s[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(s[1:], q)
		if end <= 0 {
			return "", 0
		}
		return s[1 : end+1], end + 2
	}
	n := strings.IndexAny(s, `'"[]`)
	if n < 0 {
		n = len(s)
	}
	return s[:n], n
}
