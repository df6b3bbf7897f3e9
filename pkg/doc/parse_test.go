package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# SQL tips

A short list of tips.

## Table of contents

- [First tip](#first-tip)
- [Second tip](#second-tip)

## First tip

Some prose about the first tip.

` + "```sql" + `
SELECT 1;
` + "```" + `

## Second tip

More prose.
`

func TestParseStructure(t *testing.T) {
	d, err := Parse(sampleDoc)
	require.NoError(t, err)

	assert.Equal(t, "SQL tips", d.Title)
	assert.Nil(t, d.Frontmatter)

	require.Len(t, d.TOC, 2)
	assert.Equal(t, "Table of contents", d.TOCHeading)
	assert.Equal(t, "First tip", d.TOC[0].Text)
	assert.Equal(t, "first-tip", d.TOC[0].Anchor)
	assert.Equal(t, 7, d.TOCStart)
	assert.Equal(t, 8, d.TOCEnd)

	require.Len(t, d.Sections, 2)

	first := d.Sections[0]
	assert.Equal(t, "First tip", first.Heading)
	assert.Equal(t, "first-tip", first.Slug)
	assert.Equal(t, 10, first.Line)
	assert.True(t, first.HasProse())
	require.Len(t, first.Examples, 1)
	assert.Equal(t, "sql", first.Examples[0].Language)
	assert.Equal(t, "SELECT 1;", first.Examples[0].Content)
	assert.Equal(t, 14, first.Examples[0].Line)
	assert.True(t, first.Examples[0].Closed)

	second := d.Sections[1]
	assert.Equal(t, "second-tip", second.Slug)
	assert.Empty(t, second.Examples)
}

func TestParseFrontmatter(t *testing.T) {
	content := `---
title: Custom title
description: About the tips
---
# Ignored heading

## Tip one

Prose.
`
	d, err := Parse(content)
	require.NoError(t, err)

	require.NotNil(t, d.Frontmatter)
	assert.Equal(t, "Custom title", d.Title)
	assert.Equal(t, "About the tips", d.Description)

	// Line numbers account for the frontmatter block.
	require.Len(t, d.Sections, 1)
	assert.Equal(t, 7, d.Sections[0].Line)
}

func TestParseFrontmatterUnknownField(t *testing.T) {
	content := `---
title: Tips
author: somebody
---
# Tips
`
	_, err := Parse(content)
	require.Error(t, err)

	var fieldErr *UnknownFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "author", fieldErr.Field)
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	content := "---\ntitle: [unclosed\n---\n# Tips\n"
	_, err := Parse(content)
	require.Error(t, err)

	var fmErr *FrontmatterError
	assert.ErrorAs(t, err, &fmErr)
}

func TestParseUnclosedFence(t *testing.T) {
	content := "# T\n\n## Tip\n\nProse.\n\n```sql\nSELECT 1;\n"
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.Sections, 1)
	require.Len(t, d.Sections[0].Examples, 1)
	assert.False(t, d.Sections[0].Examples[0].Closed)
}

func TestParseFenceLanguageLowercased(t *testing.T) {
	content := "# T\n\n## Tip\n\nProse.\n\n```SQL\nSELECT 1;\n```\n"
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.Sections[0].Examples, 1)
	assert.Equal(t, "sql", d.Sections[0].Examples[0].Language)
}

func TestParseTildeFence(t *testing.T) {
	content := "# T\n\n## Tip\n\nProse.\n\n~~~sql\nSELECT 1;\n~~~\n"
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.Sections[0].Examples, 1)
	assert.True(t, d.Sections[0].Examples[0].Closed)
}

func TestParsePreambleTOC(t *testing.T) {
	// Anchor links before any section act as the TOC when no dedicated
	// TOC section exists.
	content := `# Tips

- [Only tip](#only-tip)

## Only tip

Prose.
`
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.TOC, 1)
	assert.Empty(t, d.TOCHeading)
	assert.Equal(t, "only-tip", d.TOC[0].Anchor)
	require.Len(t, d.Sections, 1)
}

func TestParseDuplicateHeadings(t *testing.T) {
	content := `# Tips

## Same heading

Prose one.

## Same heading

Prose two.
`
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.Sections, 2)
	assert.Equal(t, "same-heading", d.Sections[0].Slug)
	assert.Equal(t, "same-heading-1", d.Sections[1].Slug)
}

func TestParseDeepHeadingsStayInSection(t *testing.T) {
	content := `# Tips

## Tip

### Sub point

Prose under the sub point.
`
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.Sections, 1)
	assert.True(t, d.Sections[0].HasProse())
}

func TestSectionBySlug(t *testing.T) {
	d, err := Parse(sampleDoc)
	require.NoError(t, err)

	s := d.SectionBySlug("second-tip")
	require.NotNil(t, s)
	assert.Equal(t, "Second tip", s.Heading)

	assert.Nil(t, d.SectionBySlug("nope"))
}

func TestSQLExamplesFiltersLanguage(t *testing.T) {
	content := "# T\n\n## Tip\n\nProse.\n\n```text\nnot sql\n```\n\n```sql\nSELECT 1;\n```\n"
	d, err := Parse(content)
	require.NoError(t, err)

	require.Len(t, d.Sections[0].Examples, 2)
	sql := d.Sections[0].SQLExamples()
	require.Len(t, sql, 1)
	assert.Equal(t, "SELECT 1;", sql[0].Content)
}
