package extractors

import (
	"strings"

	"golang.org/x/net/html"
)

// Unescape decodes HTML character references such as &amp; and &#169;.
func Unescape(text string) string {
	return html.UnescapeString(text)
}

// JoinInline joins trimmed inline fragments with single spaces, decodes
// character references and trims the result.
func JoinInline(fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}
	return strings.TrimSpace(Unescape(strings.Join(fragments, " ")))
}
