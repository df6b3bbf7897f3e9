package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
)

const siteTestDoc = `# SQL tips

A small collection.

## Table of contents

- [Keep it simple](#keep-it-simple)
- [Use aliases](#use-aliases)

## Keep it simple

Short queries are easier to review.

` + "```sql" + `
SELECT id FROM users;
` + "```" + `

## Use aliases

Aliases keep joins readable.

` + "```sql" + `
SELECT u.id FROM users AS u;
` + "```" + `
`

func parseTestDoc(t *testing.T) *doc.Document {
	t.Helper()
	d, err := doc.Parse(siteTestDoc)
	require.NoError(t, err)
	require.Len(t, d.Sections, 2)
	return d
}

func TestGenerateCatalog(t *testing.T) {
	d := parseTestDoc(t)

	gen := NewGenerator(d, "")
	catalog := gen.GenerateCatalog()
	require.NotNil(t, catalog)

	assert.Equal(t, "SQL tips", catalog.Title)
	assert.False(t, catalog.GeneratedAt.IsZero())
	require.Len(t, catalog.Sections, 2)

	first := catalog.Sections[0]
	assert.Equal(t, "Keep it simple", first.Heading)
	assert.Equal(t, "keep-it-simple", first.Anchor)
	require.Len(t, first.Paragraphs, 1)
	assert.Equal(t, "Short queries are easier to review.", first.Paragraphs[0])
	require.Len(t, first.Examples, 1)
	assert.Equal(t, "sql", first.Examples[0].Language)
	assert.Equal(t, "SELECT id FROM users;", first.Examples[0].SQL)

	second := catalog.Sections[1]
	assert.Equal(t, "use-aliases", second.Anchor)
	require.Len(t, second.Examples, 1)
	assert.Equal(t, "SELECT u.id FROM users AS u;", second.Examples[0].SQL)
}

func TestGenerateCatalogTitleOverride(t *testing.T) {
	d := parseTestDoc(t)

	gen := NewGenerator(d, "Custom title")
	catalog := gen.GenerateCatalog()

	assert.Equal(t, "Custom title", catalog.Title)
}

func TestBuildWritesSite(t *testing.T) {
	d := parseTestDoc(t)
	outDir := t.TempDir()

	gen := NewGenerator(d, "")
	require.NoError(t, gen.Build(outDir))

	assert.FileExists(t, filepath.Join(outDir, "index.html"))
	assert.FileExists(t, filepath.Join(outDir, "styles.css"))
	assert.FileExists(t, filepath.Join(outDir, "tips", "keep-it-simple.html"))
	assert.FileExists(t, filepath.Join(outDir, "tips", "use-aliases.html"))

	data, err := os.ReadFile(filepath.Join(outDir, "data", "catalog.json"))
	require.NoError(t, err)

	var catalog Catalog
	require.NoError(t, json.Unmarshal(data, &catalog))
	assert.Equal(t, "SQL tips", catalog.Title)
	require.Len(t, catalog.Sections, 2)
	assert.Equal(t, "keep-it-simple", catalog.Sections[0].Anchor)
}

func TestBuildIndexLinksSections(t *testing.T) {
	d := parseTestDoc(t)
	outDir := t.TempDir()

	gen := NewGenerator(d, "")
	require.NoError(t, gen.Build(outDir))

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)

	html := string(index)
	assert.Contains(t, html, "tips/keep-it-simple.html")
	assert.Contains(t, html, "tips/use-aliases.html")
	assert.Contains(t, html, "Keep it simple")
}

func TestBuildSectionPageContent(t *testing.T) {
	d := parseTestDoc(t)
	outDir := t.TempDir()

	gen := NewGenerator(d, "")
	require.NoError(t, gen.Build(outDir))

	page, err := os.ReadFile(filepath.Join(outDir, "tips", "use-aliases.html"))
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Use aliases")
	assert.Contains(t, html, "Aliases keep joins readable.")
	assert.Contains(t, html, "SELECT u.id FROM users AS u;")
	// sidebar links to the other section as well
	assert.Contains(t, html, "keep-it-simple.html")
}

func TestInjectReload(t *testing.T) {
	page := []byte("<html><body><p>hi</p></body></html>")

	out := injectReload(page)

	s := string(out)
	assert.Contains(t, s, "EventSource")
	assert.Less(t, strings.Index(s, "EventSource"), strings.Index(s, "</body>"))
}

func TestInjectReloadNoBody(t *testing.T) {
	page := []byte("plain text")

	out := injectReload(page)
	assert.Contains(t, string(out), "EventSource")
}
