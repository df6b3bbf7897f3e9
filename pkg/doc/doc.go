// Package doc models the tips document: a markdown file made of a title,
// introductory prose, a table of contents of anchor links, and a sequence of
// tip sections that pair prose with fenced SQL examples.
//
// Parsing is deliberately lenient. Structural problems (a TOC link that
// resolves nowhere, a section without prose) are represented in the model and
// flagged by lint rules; they are not parse errors.
package doc

// Document is the parsed tips document.
type Document struct {
	Title       string     // text of the first level-1 heading, if any
	Description string     // from frontmatter, if present
	Frontmatter *Meta      // nil when the document has no frontmatter block
	TOC         []TocEntry // anchor links collected from the TOC block
	TOCHeading  string     // heading text of the TOC section, "" if the TOC lives in the preamble
	TOCStart    int        // line of the first TOC entry (1-based), 0 if no TOC
	TOCEnd      int        // line of the last TOC entry
	Sections    []*Section // tip sections in document order
	Lines       int        // total line count of the source
}

// Section is one tip: a level-2 heading with its prose and examples.
type Section struct {
	Heading  string // heading text without the leading hashes
	Slug     string // anchor slug derived from Heading (duplicate-suffixed)
	Line     int    // line of the heading (1-based)
	Prose    []Paragraph
	Examples []CodeExample
}

// Paragraph is a run of non-empty prose lines inside a section.
type Paragraph struct {
	Text string
	Line int // line of the first line of the paragraph
}

// CodeExample is a fenced code block inside a section.
type CodeExample struct {
	Language string // language tag on the opening fence, lowercased; "" if absent
	Content  string // literal block content, fences excluded
	Line     int    // line of the opening fence
	Closed   bool   // false when the fence was never closed
}

// TocEntry is one anchor link from the table of contents.
type TocEntry struct {
	Text   string // display text of the link
	Anchor string // target fragment without the leading '#'
	Line   int
}

// Meta is the optional YAML frontmatter of the document.
// Unknown fields are rejected during parsing.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SectionBySlug returns the section with the given slug, or nil.
func (d *Document) SectionBySlug(slug string) *Section {
	for _, s := range d.Sections {
		if s.Slug == slug {
			return s
		}
	}
	return nil
}

// HasProse reports whether the section contains at least one non-empty
// prose paragraph.
func (s *Section) HasProse() bool {
	return len(s.Prose) > 0
}

// SQLExamples returns the examples whose language tag is "sql".
func (s *Section) SQLExamples() []CodeExample {
	var out []CodeExample
	for _, e := range s.Examples {
		if e.Language == "sql" {
			out = append(out, e)
		}
	}
	return out
}
