package doc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTOC(t *testing.T) {
	d, err := Parse(sampleDoc)
	require.NoError(t, err)

	want := []string{
		"- [First tip](#first-tip)",
		"- [Second tip](#second-tip)",
	}
	assert.Equal(t, want, d.GenerateTOC())
}

func TestTOCMatches(t *testing.T) {
	d, err := Parse(sampleDoc)
	require.NoError(t, err)
	assert.True(t, d.TOCMatches())

	stale := strings.Replace(sampleDoc, "- [Second tip](#second-tip)", "- [Second tip](#old-anchor)", 1)
	d, err = Parse(stale)
	require.NoError(t, err)
	assert.False(t, d.TOCMatches())
}

func TestTOCMatchesMissingEntry(t *testing.T) {
	missing := strings.Replace(sampleDoc, "- [Second tip](#second-tip)\n", "", 1)
	d, err := Parse(missing)
	require.NoError(t, err)
	assert.False(t, d.TOCMatches())
}

func TestRewriteTOC(t *testing.T) {
	stale := strings.Replace(sampleDoc, "- [Second tip](#second-tip)", "- [Second tip](#old-anchor)", 1)

	updated, found, err := RewriteTOC(stale)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sampleDoc, updated)

	// Rewriting an already current document is a no-op.
	again, found, err := RewriteTOC(updated)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, updated, again)
}

func TestRewriteTOCNoBlock(t *testing.T) {
	content := "# Tips\n\n## Tip\n\nProse.\n"
	out, found, err := RewriteTOC(content)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, content, out)
}

func TestRewriteTOCAddsMissingEntry(t *testing.T) {
	missing := strings.Replace(sampleDoc, "- [Second tip](#second-tip)\n", "", 1)

	updated, found, err := RewriteTOC(missing)
	require.NoError(t, err)
	require.True(t, found)

	d, err := Parse(updated)
	require.NoError(t, err)
	assert.True(t, d.TOCMatches())
	assert.Len(t, d.TOC, 2)
}
