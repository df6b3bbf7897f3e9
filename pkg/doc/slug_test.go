package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{
			name:    "dummy value tip",
			heading: "Use a dummy value in the WHERE clause",
			want:    "use-a-dummy-value-in-the-where-clause",
		},
		{
			name:    "punctuation is stripped",
			heading: "Comment your code!",
			want:    "comment-your-code",
		},
		{
			name:    "apostrophe vanishes without separator",
			heading: "Don't repeat yourself",
			want:    "dont-repeat-yourself",
		},
		{
			name:    "multiple spaces collapse",
			heading: "Be  careful   when comparing NULLs",
			want:    "be-careful-when-comparing-nulls",
		},
		{
			name:    "hyphens and underscores survive",
			heading: "anti-join vs semi_join",
			want:    "anti-join-vs-semi_join",
		},
		{
			name:    "leading and trailing space",
			heading: "  Prefer UNION ALL over UNION  ",
			want:    "prefer-union-all-over-union",
		},
		{
			name:    "digits survive",
			heading: "Top 10 mistakes",
			want:    "top-10-mistakes",
		},
		{
			name:    "empty heading",
			heading: "",
			want:    "",
		},
		{
			name:    "only punctuation",
			heading: "!!!",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.heading))
		})
	}
}

func TestSluggerDuplicates(t *testing.T) {
	s := NewSlugger()

	assert.Equal(t, "comment-your-code", s.Slug("Comment your code!"))
	assert.Equal(t, "comment-your-code-1", s.Slug("Comment your code!"))
	assert.Equal(t, "comment-your-code-2", s.Slug("Comment your code"))
	assert.Equal(t, "something-else", s.Slug("Something else"))
}
