package spellhtml

import (
	"github.com/mrjoshuak/spellhtml/extractor"
	"github.com/mrjoshuak/spellhtml/internal/sniff"
)

// Filter extracts text from documents. A Filter is safe for concurrent use.
type Filter = extractor.Filter

// Option represents a function that modifies Options.
type Option = extractor.Option

// WithComments enables or disables extraction of comment text.
// Comments are extracted by default.
func WithComments(enable bool) Option {
	return extractor.WithComments(enable)
}

// WithAttributes sets the attribute names whose values are extracted,
// in the order they are reported for each element.
func WithAttributes(names ...string) Option {
	return extractor.WithAttributes(names...)
}

// WithMode sets the markup flavor documents are parsed as.
func WithMode(mode Mode) Option {
	return extractor.WithMode(mode)
}

// WithIgnores sets the selectors of elements to skip.
func WithIgnores(selectors ...string) Option {
	return extractor.WithIgnores(selectors...)
}

// WithDefaultEncoding sets the encoding assumed for documents without a
// byte-order mark or a declared encoding.
func WithDefaultEncoding(name string) Option {
	return extractor.WithDefaultEncoding(name)
}

// WithMaxBufferSize limits the size of documents read from files and
// readers. Larger documents fail with ErrDocumentLarge.
func WithMaxBufferSize(size int64) Option {
	return extractor.WithMaxBufferSize(size)
}

// New creates a new Filter with the provided options. It fails when an
// ignore selector is malformed or an option names an unknown mode or
// encoding.
//
// Example:
//
//	filter, err := spellhtml.New(
//	    spellhtml.WithComments(false),
//	    spellhtml.WithIgnores("code"),
//	)
func New(opts ...Option) (Filter, error) {
	return extractor.New(opts...)
}

// NewWithOptions creates a Filter from a complete Options value.
func NewWithOptions(options Options) (Filter, error) {
	return extractor.NewWithOptions(options)
}

// DetectEncoding returns the encoding declared inside raw by a <meta>
// charset or an XML declaration, or "" when there is none. Byte-order
// marks are not considered.
func DetectEncoding(raw []byte) string {
	return sniff.Sniff(raw)
}
