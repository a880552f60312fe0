// Package extractor provides the HTML filter session: it compiles skip rules
// once, parses documents in the configured mode and turns the extracted text
// into SourceText values.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mrjoshuak/spellhtml/internal/dom"
	"github.com/mrjoshuak/spellhtml/internal/extractors"
	"github.com/mrjoshuak/spellhtml/internal/selector"
	"github.com/mrjoshuak/spellhtml/internal/sniff"
	"github.com/mrjoshuak/spellhtml/types"
)

// Filter defines the interface for HTML text extraction.
type Filter interface {
	// FilterFile reads and filters a file. An empty encoding is resolved
	// from the file's bytes.
	FilterFile(path, encoding string) ([]types.SourceText, error)

	// FilterReader reads and filters a document from r.
	FilterReader(r io.Reader, context, encoding string) ([]types.SourceText, error)

	// FilterString filters already decoded text.
	FilterString(text, context, encoding string) ([]types.SourceText, error)

	// FilterSource filters the output of a previous filter, keeping its
	// context and encoding.
	FilterSource(src types.SourceText) ([]types.SourceText, error)
}

// Option represents a function that modifies Options.
// This follows the functional options pattern for configuring the filter.
type Option func(*types.Options)

// WithComments enables or disables extraction of comment text.
func WithComments(enable bool) Option {
	return func(o *types.Options) {
		o.Comments = enable
	}
}

// WithAttributes sets the attribute names whose values are extracted.
func WithAttributes(names ...string) Option {
	return func(o *types.Options) {
		o.Attributes = append([]string(nil), names...)
	}
}

// WithMode sets the markup flavor documents are parsed as.
func WithMode(mode types.Mode) Option {
	return func(o *types.Options) {
		o.Mode = mode
	}
}

// WithIgnores sets the selectors of elements to skip. Script and style
// elements are always skipped.
func WithIgnores(selectors ...string) Option {
	return func(o *types.Options) {
		o.Ignores = append([]string(nil), selectors...)
	}
}

// WithDefaultEncoding sets the encoding assumed for documents that declare
// none. Without it the encoding is guessed.
func WithDefaultEncoding(name string) Option {
	return func(o *types.Options) {
		o.DefaultEncoding = name
	}
}

// WithMaxBufferSize sets the largest document accepted from files and
// readers.
func WithMaxBufferSize(size int64) Option {
	return func(o *types.Options) {
		o.MaxBufferSize = size
	}
}

// htmlFilter is the concrete implementation of the Filter interface.
// Its fields are read-only after New, so one filter may serve concurrent
// calls.
type htmlFilter struct {
	options    types.Options
	rules      *selector.RuleSet
	attributes []string
}

// New creates a Filter from the default options modified by opts. It fails
// when the mode is unknown or a selector in the ignore list is malformed.
func New(opts ...Option) (Filter, error) {
	options := types.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a Filter from a complete set of options.
func NewWithOptions(options types.Options) (Filter, error) {
	mode, err := types.ParseMode(string(options.Mode))
	if err != nil {
		return nil, types.WrapConfigError(err, "New", "")
	}
	options.Mode = mode

	if options.DefaultEncoding != "" {
		if _, ok := sniff.Lookup(options.DefaultEncoding); !ok {
			return nil, types.WrapConfigError(types.ErrUnknownEncoding, "New", options.DefaultEncoding)
		}
	}

	rules, err := selector.Compile(options.Ignores, mode.IsXML())
	if err != nil {
		return nil, types.WrapConfigError(err, "New", "compiling ignores")
	}

	return &htmlFilter{
		options:    options,
		rules:      rules,
		attributes: attributeNames(options.Attributes, mode.IsXML()),
	}, nil
}

// attributeNames drops blanks and duplicates; HTML parsers report
// attribute names in lower case, so HTML modes fold them too.
func attributeNames(names []string, xml bool) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if !xml {
			name = strings.ToLower(name)
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// FilterFile reads the file at path and filters it.
func (f *htmlFilter) FilterFile(path, encoding string) ([]types.SourceText, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, types.WrapIOError(err, "FilterFile", "opening "+path)
	}
	defer file.Close()

	return f.FilterReader(file, path, encoding)
}

// FilterReader reads at most MaxBufferSize bytes from r, resolves the
// encoding when none is given, decodes and filters the document.
func (f *htmlFilter) FilterReader(r io.Reader, context, encoding string) ([]types.SourceText, error) {
	raw, err := f.readAll(r)
	if err != nil {
		return nil, types.WrapIOError(err, "FilterReader", context)
	}

	if encoding == "" {
		encoding, err = sniff.Resolve(raw, f.options.DefaultEncoding)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", context, err)
		}
		log.Debug().Str("context", context).Str("encoding", encoding).Msg("resolved encoding")
	}

	text, err := sniff.Decode(raw, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return f.FilterString(text, context, encoding)
}

func (f *htmlFilter) readAll(r io.Reader) ([]byte, error) {
	if f.options.MaxBufferSize <= 0 {
		return io.ReadAll(r)
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, f.options.MaxBufferSize+1))
	if err != nil {
		return nil, err
	}
	if n > f.options.MaxBufferSize {
		return nil, types.ErrDocumentLarge
	}
	return buf.Bytes(), nil
}

// FilterSource filters the text of a previous SourceText.
func (f *htmlFilter) FilterSource(src types.SourceText) ([]types.SourceText, error) {
	return f.FilterString(src.Text, src.Context, src.Encoding)
}

// FilterString parses text and returns its comments, then attribute
// values, then content blocks, each in document order.
func (f *htmlFilter) FilterString(text, context, encoding string) ([]types.SourceText, error) {
	root, err := f.parse(text)
	if err != nil {
		return nil, types.WrapParseError(err, "FilterString", context)
	}

	res := extractors.ExtractText(root, extractors.Config{
		Rules:      f.rules,
		Comments:   f.options.Comments,
		Attributes: f.attributes,
		XML:        f.options.Mode.IsXML(),
	})

	prefix := f.options.Mode.Prefix()
	out := make([]types.SourceText, 0, len(res.Comments)+len(res.Attributes)+len(res.Blocks))
	out = appendFragments(out, res.Comments, context, encoding, types.NewCategory(prefix, types.KindComment))
	out = appendFragments(out, res.Attributes, context, encoding, types.NewCategory(prefix, types.KindAttribute))
	out = appendFragments(out, res.Blocks, context, encoding, types.NewCategory(prefix, types.KindContent))
	return out, nil
}

func (f *htmlFilter) parse(text string) (*dom.Node, error) {
	switch f.options.Mode {
	case types.ModeXHTML:
		return dom.ParseXHTML(text)
	case types.ModeHTML5:
		return dom.ParseHTML5(text)
	default:
		return dom.ParseHTML(text)
	}
}

func appendFragments(out []types.SourceText, frags []extractors.Fragment, context, encoding string, category types.Category) []types.SourceText {
	for _, frag := range frags {
		out = append(out, types.SourceText{
			Text:     frag.Text,
			Context:  context + ": " + frag.Descriptor,
			Encoding: encoding,
			Category: category,
		})
	}
	return out
}
