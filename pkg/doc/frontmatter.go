package doc

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterPattern matches a leading --- ... --- block.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*(\n|\z)`)

// extractFrontmatter splits an optional YAML frontmatter block off the
// document. It returns the parsed metadata (nil when absent), the remaining
// markdown, and the number of lines the block occupied.
func extractFrontmatter(content string) (*Meta, string, int, error) {
	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return nil, content, 0, nil
	}

	meta, err := parseMetaYAML(m[1])
	if err != nil {
		return nil, content, 0, err
	}

	consumed := strings.Count(m[0], "\n")
	return meta, content[len(m[0]):], consumed, nil
}

// parseMetaYAML parses frontmatter with strict field validation.
func parseMetaYAML(yamlContent string) (*Meta, error) {
	var rawMap map[string]any
	if err := yaml.Unmarshal([]byte(yamlContent), &rawMap); err != nil {
		return nil, &FrontmatterError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	knownFields := map[string]bool{
		"title":       true,
		"description": true,
	}
	for field := range rawMap {
		if !knownFields[field] {
			return nil, &UnknownFieldError{Field: field}
		}
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(yamlContent), &meta); err != nil {
		return nil, &FrontmatterError{Message: fmt.Sprintf("failed to parse frontmatter: %v", err)}
	}
	return &meta, nil
}

// FrontmatterError represents a frontmatter parsing error.
type FrontmatterError struct {
	File    string
	Line    int
	Message string
}

func (e *FrontmatterError) Error() string {
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// UnknownFieldError reports a frontmatter field this document format
// does not define.
type UnknownFieldError struct {
	File  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q in frontmatter", e.Field)
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}
