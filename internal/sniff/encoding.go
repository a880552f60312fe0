package sniff

import (
	"bytes"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/mrjoshuak/spellhtml/types"
)

// extraEncodings covers codec spellings that neither the IANA nor the
// WHATWG registries know, keyed by lowercase name with '_' turned into '-'.
var extraEncodings = map[string]encoding.Encoding{
	"utf-16-be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16-le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-32":    utf32.UTF32(utf32.BigEndian, utf32.UseBOM),
	"utf-32be":  utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le":  utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf-32-be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32-le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

// Lookup resolves a codec name against the IANA registry, then the WHATWG
// labels used by browsers, then a few common extra spellings.
func Lookup(name string) (encoding.Encoding, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, true
	}
	if enc, _ := charset.Lookup(name); enc != nil {
		return enc, true
	}
	enc, ok := extraEncodings[strings.ReplaceAll(strings.ToLower(name), "_", "-")]
	return enc, ok
}

// boms are checked longest first so UTF-32 LE is not mistaken for UTF-16 LE.
var boms = []struct {
	mark []byte
	name string
}{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32-be"},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32-le"},
	{[]byte{0xEF, 0xBB, 0xBF}, "utf-8"},
	{[]byte{0xFE, 0xFF}, "utf-16-be"},
	{[]byte{0xFF, 0xFE}, "utf-16-le"},
}

// BOM returns the encoding named by a leading byte-order mark, or "".
func BOM(raw []byte) string {
	for _, b := range boms {
		if bytes.HasPrefix(raw, b.mark) {
			return b.name
		}
	}
	return ""
}

// Resolve picks the encoding to decode raw with. The order is: byte-order
// mark, declared encoding, defaultEncoding, a statistical guess, utf-8.
// Input that does not look like text fails with types.ErrBinaryContent
// unless a mark or declaration vouches for it.
func Resolve(raw []byte, defaultEncoding string) (string, error) {
	if len(raw) == 0 {
		return "ascii", nil
	}
	if name := BOM(raw); name != "" {
		return name, nil
	}
	if name := Sniff(raw); name != "" {
		return name, nil
	}
	if !isText(raw) {
		return "", types.ErrBinaryContent
	}
	if defaultEncoding != "" {
		if _, ok := Lookup(defaultEncoding); !ok {
			return "", types.WrapDecodeError(types.ErrUnknownEncoding, "Resolve", defaultEncoding)
		}
		return defaultEncoding, nil
	}
	if result, err := chardet.NewTextDetector().DetectBest(raw); err == nil && result != nil {
		name := strings.ToLower(result.Charset)
		if _, ok := Lookup(name); ok {
			return name, nil
		}
	}
	return "utf-8", nil
}

// isText reports whether the detected MIME type descends from text/plain.
func isText(raw []byte) bool {
	for m := mimetype.Detect(raw); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// Decode converts raw to a UTF-8 string using the named codec, dropping a
// leading byte-order mark.
func Decode(raw []byte, name string) (string, error) {
	enc, ok := Lookup(name)
	if !ok {
		return "", types.WrapDecodeError(types.ErrUnknownEncoding, "Decode", name)
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()))
	if err != nil {
		return "", types.WrapDecodeError(err, "Decode", "decoding as "+name)
	}
	return strings.TrimPrefix(string(out), "\uFEFF"), nil
}
