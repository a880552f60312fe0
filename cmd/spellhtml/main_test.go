package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/spellhtml"
)

func TestRunStdinText(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-input", "-", "-format", "text", "-comments=false"},
		strings.NewReader(`<p>Helo <b>world</b></p><!-- skip me -->`), &out)

	assert.Equal(t, 0, code)
	assert.Equal(t, "<stdin>: p\tHelo world\n", out.String())
}

func TestRunFilesJSON(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<div><img alt="Kitten"><code>x := 1</code></div>`), 0o644))

	var out bytes.Buffer
	code := run([]string{"-input", page, "-attributes", "alt", "-ignore", "code", "-compact"}, nil, &out)
	require.Equal(t, 0, code)

	var got []spellhtml.SourceText
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kitten", got[0].Text)
	assert.Equal(t, page+": img[alt]", got[0].Context)
	assert.Equal(t, spellhtml.Category("htmlattribute"), got[0].Category)
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "a.html"), []byte(`<p>Alpha</p>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "b.xhtml"),
		[]byte(`<html xmlns="http://www.w3.org/1999/xhtml"><body><p>Beta</p></body></html>`), 0o644))

	cfg := filepath.Join(dir, "tasks.yml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
matrix:
  - name: html
    sources: ["docs/**/*.html"]
  - name: xhtml
    sources: ["docs/*.xhtml"]
    html:
      mode: xhtml
`), 0o644))

	var out bytes.Buffer
	code := run([]string{"-config", cfg, "-format", "text"}, nil, &out)
	require.Equal(t, 0, code)
	assert.Equal(t,
		filepath.Join(dir, "docs", "a.html")+": p\tAlpha\n"+
			filepath.Join(dir, "docs", "b.xhtml")+": p\tBeta\n",
		out.String())

	out.Reset()
	code = run([]string{"-config", cfg, "-task", "xhtml", "-format", "text"}, nil, &out)
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(dir, "docs", "b.xhtml")+": p\tBeta\n", out.String())

	code = run([]string{"-config", cfg, "-task", "nope"}, nil, &out)
	assert.Equal(t, 2, code)
}

func TestRunConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte(`<p>Env</p>`), 0o644))
	cfg := filepath.Join(dir, "tasks.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("matrix:\n  - sources: [\"*.html\"]\n"), 0o644))
	t.Setenv("SPELLHTML_CONFIG", cfg)

	var out bytes.Buffer
	code := run([]string{"-format", "text"}, nil, &out)
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(dir, "a.html")+": p\tEnv\n", out.String())
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run([]string{"-format", "yaml"}, nil, &out))
	assert.Equal(t, 2, run([]string{"-mode", "sgml"}, nil, &out))
	assert.Equal(t, 2, run([]string{"-ignore", "div > p"}, nil, &out))
	assert.Equal(t, 2, run([]string{"-no-such-flag"}, nil, &out))

	out.Reset()
	code := run([]string{"-input", filepath.Join(t.TempDir(), "missing.html")}, nil, &out)
	assert.Equal(t, 1, code)
	assert.Equal(t, "[]\n", out.String())
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{"-version"}, nil, &out))
	assert.Contains(t, out.String(), spellhtml.Name+" version "+spellhtml.Version)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"alt", "title"}, splitList(" alt, ,title,"))
	assert.Nil(t, splitList(""))
}
