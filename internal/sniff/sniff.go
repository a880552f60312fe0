// Package sniff finds the character encoding a markup document declares
// about itself, working on the raw bytes before any decoding happens.
package sniff

import (
	"bytes"
	"regexp"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	reMetaOpen    = regexp.MustCompile(`(?i)<\s*meta`)
	reMetaNamed   = regexp.MustCompile(`(?i)^\s*(?:name|value)\s*=`)
	reMetaCharset = regexp.MustCompile(`(?i)charset\s*=[\s"']*([^\s"'/>]*)`)

	reXMLStart  = regexp.MustCompile(`^<\?xml[^>]+?>`)
	reXMLEncode = regexp.MustCompile(`(?i)^<\?xml[^>]*encoding=(?:"([^"]*)"|'([^']*)')[^>]*\?>`)
)

// wideForm is an XML declaration layout for a multi-byte encoding. The
// open and close markers are "<?xml" and ">" in that encoding.
type wideForm struct {
	enc   encoding.Encoding
	unit  int
	open  []byte
	close []byte
}

// wideForms are tried in order after the ASCII-compatible form.
var wideForms = []wideForm{
	newWideForm(utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), 4),
	newWideForm(utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), 4),
	newWideForm(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 2),
	newWideForm(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), 2),
}

func newWideForm(enc encoding.Encoding, unit int) wideForm {
	e := enc.NewEncoder()
	open, err := e.Bytes([]byte("<?xml"))
	if err != nil {
		panic(err)
	}
	end, err := e.Bytes([]byte(">"))
	if err != nil {
		panic(err)
	}
	return wideForm{enc: enc, unit: unit, open: open, close: end}
}

// Sniff returns the encoding declared by a <meta charset> tag or an XML
// declaration in raw, or "" when there is none. A declared name that is
// not a known codec counts as no declaration. Sniff never fails.
func Sniff(raw []byte) string {
	if name, found := metaCharset(raw); found {
		if _, ok := Lookup(name); ok {
			return name
		}
		return ""
	}
	return xmlEncoding(raw)
}

// metaCharset finds the first <meta> tag carrying a charset. found is true
// when such a tag exists, even if its value is empty.
func metaCharset(raw []byte) (string, bool) {
	for _, loc := range reMetaOpen.FindAllIndex(raw, -1) {
		rest := raw[loc[1]:]
		if reMetaNamed.Match(rest) {
			continue
		}
		if end := bytes.IndexByte(rest, '>'); end >= 0 {
			rest = rest[:end]
		}
		if m := reMetaCharset.FindSubmatch(rest); m != nil {
			return string(m[1]), true
		}
	}
	return "", false
}

// xmlEncoding reads the encoding attribute of an XML declaration at the
// very start of raw, in ASCII-compatible or UTF-16/32 form.
func xmlEncoding(raw []byte) string {
	var decl string
	if span := reXMLStart.Find(raw); span != nil {
		decl = string(span)
	} else {
		for _, form := range wideForms {
			span := form.match(raw)
			if span == nil {
				continue
			}
			text, err := form.enc.NewDecoder().Bytes(span)
			if err != nil {
				return ""
			}
			decl = string(text)
			break
		}
	}
	if decl == "" {
		return ""
	}

	m := reXMLEncode.FindStringSubmatch(decl)
	if m == nil {
		return ""
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	if _, ok := Lookup(name); !ok {
		return ""
	}
	return name
}

// match returns the declaration span from the open marker up to and
// including the first code-unit-aligned close marker, or nil.
func (f wideForm) match(raw []byte) []byte {
	if !bytes.HasPrefix(raw, f.open) {
		return nil
	}
	// At least one code unit must sit between the markers.
	for i := len(f.open) + f.unit; i+len(f.close) <= len(raw); i += f.unit {
		if bytes.Equal(raw[i:i+len(f.close)], f.close) {
			return raw[:i+len(f.close)]
		}
	}
	return nil
}
