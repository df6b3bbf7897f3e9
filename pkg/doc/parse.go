package doc

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// tocEntryPattern matches a markdown list item that is a single in-document
// anchor link, e.g. `- [Comment your code!](#comment-your-code)`.
var tocEntryPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+\[([^\]]+)\]\(#([^)\s]+)\)\s*$`)

// headingPattern matches an ATX heading with up to three leading spaces.
var headingPattern = regexp.MustCompile(`^ {0,3}(#{1,6})\s+(.*?)\s*#*\s*$`)

// fencePattern matches the opening of a fenced code block.
var fencePattern = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})\\s*(\\S*)")

// Parse reads a tips document into its structural model.
//
// Parsing is lenient: a TOC entry pointing nowhere, a section without prose,
// or an unclosed fence all survive into the model so the lint rules can
// report them. The only hard failure is unreadable frontmatter.
func Parse(content string) (*Document, error) {
	meta, body, offset, err := extractFrontmatter(content)
	if err != nil {
		return nil, err
	}

	d := &Document{Frontmatter: meta}
	if meta != nil {
		d.Title = meta.Title
		d.Description = meta.Description
	}

	lines := strings.Split(body, "\n")
	d.Lines = offset + len(lines)

	slugger := NewSlugger()

	type sectionAcc struct {
		section *Section
		entries []TocEntry
	}
	var (
		preamble []TocEntry // anchor links seen before any section
		accs     []*sectionAcc
		cur      *sectionAcc

		inFence     bool
		fenceMarker string
		fenceLang   string
		fenceLine   int
		fenceBody   []string

		paraLines []string
		paraStart int
	)

	flushPara := func() {
		if len(paraLines) == 0 {
			return
		}
		if cur != nil {
			cur.section.Prose = append(cur.section.Prose, Paragraph{
				Text: strings.Join(paraLines, " "),
				Line: paraStart,
			})
		}
		paraLines = nil
	}

	closeFence := func(closed bool) {
		ex := CodeExample{
			Language: fenceLang,
			Content:  strings.Join(fenceBody, "\n"),
			Line:     fenceLine,
			Closed:   closed,
		}
		if cur != nil {
			cur.section.Examples = append(cur.section.Examples, ex)
		}
		inFence = false
		fenceBody = nil
	}

	for i, line := range lines {
		lineNo := offset + i + 1

		if inFence {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, fenceMarker) && strings.TrimLeft(trimmed, string(fenceMarker[0])) == "" {
				closeFence(true)
			} else {
				fenceBody = append(fenceBody, line)
			}
			continue
		}

		if m := fencePattern.FindStringSubmatch(line); m != nil {
			flushPara()
			inFence = true
			fenceMarker = m[1]
			fenceLang = strings.ToLower(m[2])
			fenceLine = lineNo
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flushPara()
			level := len(m[1])
			text := m[2]
			slug := slugger.Slug(text)
			switch level {
			case 1:
				if d.Title == "" {
					d.Title = text
				}
				cur = nil
			case 2:
				cur = &sectionAcc{section: &Section{
					Heading: text,
					Slug:    slug,
					Line:    lineNo,
				}}
				accs = append(accs, cur)
			default:
				// Deeper headings stay part of the enclosing section's prose.
			}
			continue
		}

		if m := tocEntryPattern.FindStringSubmatch(line); m != nil {
			flushPara()
			entry := TocEntry{Text: m[1], Anchor: m[2], Line: lineNo}
			if cur != nil {
				cur.entries = append(cur.entries, entry)
			} else {
				preamble = append(preamble, entry)
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushPara()
			continue
		}

		if len(paraLines) == 0 {
			paraStart = lineNo
		}
		paraLines = append(paraLines, strings.TrimSpace(line))
	}
	flushPara()
	if inFence {
		closeFence(false)
	}

	// The TOC block is the first section that is nothing but anchor links.
	// A document without such a section may keep its TOC in the preamble.
	tocIdx := -1
	for i, a := range accs {
		if len(a.entries) > 0 && !a.section.HasProse() && len(a.section.Examples) == 0 {
			tocIdx = i
			break
		}
	}
	if tocIdx >= 0 {
		toc := accs[tocIdx]
		d.TOC = toc.entries
		d.TOCHeading = toc.section.Heading
	} else {
		d.TOC = preamble
	}
	if len(d.TOC) > 0 {
		d.TOCStart = d.TOC[0].Line
		d.TOCEnd = d.TOC[len(d.TOC)-1].Line
	}

	for i, a := range accs {
		if i == tocIdx {
			continue
		}
		d.Sections = append(d.Sections, a.section)
	}

	return d, nil
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	d, err := Parse(string(content))
	if err != nil {
		switch e := err.(type) {
		case *FrontmatterError:
			e.File = path
		case *UnknownFieldError:
			e.File = path
		}
		return nil, err
	}
	return d, nil
}
