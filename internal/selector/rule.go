// Package selector compiles the restricted selector language used to skip
// parts of a document, and describes elements with the same syntax.
//
// A selector is a single compound of, in any order: an optional
// namespace|tag (or *), any number of .class tokens, an #id and any number
// of [attr], [attr=value], [attr^=value], [attr$=value], [attr*=value],
// [attr~=value] or [attr|=value] predicates. Combinators and pseudo-classes
// are not supported.
package selector

import (
	"regexp"
)

// AttributePredicate tests one attribute. A nil Pattern only requires the
// attribute to be present with a non-empty value.
type AttributePredicate struct {
	Name    string
	Pattern *regexp.Regexp
}

// Rule is one compiled selector. Empty string fields are absent; a
// namespace is only checked when HasNamespace is set.
type Rule struct {
	Tag          string
	Namespace    string
	HasNamespace bool
	ID           string
	Classes      []string
	Attributes   []AttributePredicate
}

// builtinRules are always part of a RuleSet.
var builtinRules = []Rule{
	{Tag: "style"},
	{Tag: "script"},
}

// RuleSet is an immutable, ordered collection of rules compiled for one
// mode. It is safe for concurrent use.
type RuleSet struct {
	rules []Rule
	xml   bool
}

// Rules returns a copy of the compiled rules, built-ins first.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules including the built-ins.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// XML reports whether the rules were compiled with case-sensitive XML rules.
func (rs *RuleSet) XML() bool {
	return rs.xml
}
