package types

import (
	"fmt"
	"strings"
)

// Mode selects the markup flavor used to build the document tree. It also
// decides whether tag, attribute and class comparisons are case-sensitive.
type Mode string

// Supported modes.
const (
	ModeHTML  Mode = "html"
	ModeXHTML Mode = "xhtml"
	ModeHTML5 Mode = "html5"
)

// ParseMode converts a configuration string into a Mode. "html5lib" is
// accepted as an alias of html5 and the empty string selects html.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return ModeHTML, nil
	case "xhtml":
		return ModeXHTML, nil
	case "html5", "html5lib":
		return ModeHTML5, nil
	}
	return "", fmt.Errorf("unknown mode %q (want html, xhtml or html5)", s)
}

// IsXML reports whether the mode uses case-sensitive XML rules.
func (m Mode) IsXML() bool {
	return m == ModeXHTML
}

// Prefix returns the category prefix for fragments produced in this mode.
func (m Mode) Prefix() string {
	if m.IsXML() {
		return "xhtml"
	}
	return "html"
}

// Options configures an HTML filter session.
type Options struct {
	Comments        bool     // Extract comment text
	Attributes      []string // Attribute names whose values are extracted
	Mode            Mode     // Parser flavor and case rules
	Ignores         []string // Selectors for elements to skip, in addition to script and style
	DefaultEncoding string   // Encoding used when a document declares none; empty means guess
	MaxBufferSize   int64    // Largest document accepted from files and readers
}

// DefaultOptions returns the default filter options: comments are
// extracted, no attributes are scanned, documents are parsed as HTML and
// inputs are limited to 10MB.
func DefaultOptions() Options {
	return Options{
		Comments:      true,
		Mode:          ModeHTML,
		MaxBufferSize: 10 * 1024 * 1024,
	}
}
