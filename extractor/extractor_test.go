package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/spellhtml/internal/selector"
	"github.com/mrjoshuak/spellhtml/types"
)

const page = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Sample</title></head>
<body>
<!-- greeting -->
<div id="main">
  <p class="intro">Welcome to <em>the</em> page.</p>
  <img src="cat.png" alt="A sleepy cat">
  <pre class="nospell">sudo rm -rf</pre>
</div>
</body>
</html>`

func TestFilterString(t *testing.T) {
	f, err := New(WithAttributes("alt"), WithIgnores("pre.nospell"))
	require.NoError(t, err)

	out, err := f.FilterString(page, "page.html", "utf-8")
	require.NoError(t, err)

	assert.Equal(t, []types.SourceText{
		{Text: "greeting", Context: "page.html: body<!--comment-->", Encoding: "utf-8", Category: "htmlcomment"},
		{Text: "A sleepy cat", Context: "page.html: img[alt]", Encoding: "utf-8", Category: "htmlattribute"},
		{Text: "Sample", Context: "page.html: head", Encoding: "utf-8", Category: "htmlcontent"},
		{Text: "Welcome to the page.", Context: "page.html: p.intro", Encoding: "utf-8", Category: "htmlcontent"},
	}, out)
}

func TestFilterStringXHTML(t *testing.T) {
	f, err := New(WithMode(types.ModeXHTML), WithComments(false))
	require.NoError(t, err)

	src := `<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml"><body><p>Caf&#233; <!-- x --></p></body></html>`
	out, err := f.FilterString(src, "doc.xhtml", "utf-8")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "Café", out[0].Text)
	assert.Equal(t, "doc.xhtml: p", out[0].Context)
	assert.Equal(t, types.Category("xhtmlcontent"), out[0].Category)
}

func TestFilterStringHTML5Namespace(t *testing.T) {
	f, err := New(WithMode("html5lib"), WithIgnores("|*"))
	require.NoError(t, err)

	// HTML5 trees put every element in a namespace, so a rule for
	// namespace-less elements matches nothing.
	out, err := f.FilterString(`<p>kept</p>`, "x", "utf-8")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "kept", out[0].Text)

	f, err = New(WithMode(types.ModeHTML), WithIgnores("|*"))
	require.NoError(t, err)
	out, err = f.FilterString(`<p>dropped</p>`, "x", "utf-8")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterFileResolvesEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin.html")
	raw := []byte("<html><head><meta charset=\"iso-8859-1\"></head><body><p>na\xefve caf\xe9</p></body></html>")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	f, err := New()
	require.NoError(t, err)

	out, err := f.FilterFile(path, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "naïve café", out[0].Text)
	assert.Equal(t, "iso-8859-1", out[0].Encoding)
	assert.Equal(t, path+": p", out[0].Context)
}

func TestFilterFileMissing(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	_, err = f.FilterFile(filepath.Join(t.TempDir(), "missing.html"), "")
	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.IOError))
}

func TestFilterReaderLimits(t *testing.T) {
	f, err := New(WithMaxBufferSize(16))
	require.NoError(t, err)

	_, err = f.FilterReader(strings.NewReader(strings.Repeat("<p>x</p>", 10)), "big", "utf-8")
	assert.ErrorIs(t, err, types.ErrDocumentLarge)

	out, err := f.FilterReader(strings.NewReader("<p>small</p>"), "small", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "small", out[0].Text)
}

func TestFilterReaderUnknownEncoding(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	_, err = f.FilterReader(strings.NewReader("<p>x</p>"), "doc", "klingon")
	assert.ErrorIs(t, err, types.ErrUnknownEncoding)
}

func TestFilterSource(t *testing.T) {
	f, err := New(WithComments(false))
	require.NoError(t, err)

	out, err := f.FilterSource(types.SourceText{Text: "<p>Fish &amp;amp; chips</p>", Context: "readme.md", Encoding: "utf-8"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Fish & chips", out[0].Text)
	assert.Equal(t, "readme.md: p", out[0].Context)
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	_, err := New(WithIgnores("div p"))
	require.Error(t, err)
	assert.True(t, types.IsConfigError(err))
	var selErr *selector.InvalidSelectorError
	assert.ErrorAs(t, err, &selErr)

	_, err = New(WithMode("sgml"))
	assert.True(t, types.IsConfigError(err))

	_, err = New(WithDefaultEncoding("klingon"))
	assert.ErrorIs(t, err, types.ErrUnknownEncoding)
}

func TestAttributeNames(t *testing.T) {
	assert.Equal(t, []string{"alt", "title"}, attributeNames([]string{"ALT", " title ", "", "alt"}, false))
	assert.Equal(t, []string{"Alt", "alt"}, attributeNames([]string{"Alt", "alt"}, true))
}

func TestConcurrentUse(t *testing.T) {
	f, err := New(WithAttributes("alt"), WithIgnores(".nospell"))
	require.NoError(t, err)

	want, err := f.FilterString(page, "page.html", "utf-8")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.FilterString(page, "page.html", "utf-8")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
