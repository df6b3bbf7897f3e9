// Package site generates a static browsable site from the tips
// document. It exports the parsed sections to JSON and renders a
// self-contained set of HTML pages that can be hosted on GitHub Pages
// or similar.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"golang.org/x/sync/errgroup"
)

// ExampleDoc represents a SQL example for the catalog.
type ExampleDoc struct {
	Language string `json:"language"`
	SQL      string `json:"sql"`
	Line     int    `json:"line"`
}

// SectionDoc represents a tip section for the catalog.
type SectionDoc struct {
	Heading    string       `json:"heading"`
	Anchor     string       `json:"anchor"`
	Line       int          `json:"line"`
	Paragraphs []string     `json:"paragraphs"`
	Examples   []ExampleDoc `json:"examples"`
}

// Catalog represents the full site catalog.
type Catalog struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Title       string       `json:"title"`
	Sections    []SectionDoc `json:"sections"`
}

// Generator renders the site from a parsed document.
type Generator struct {
	document *doc.Document
	title    string
}

// NewGenerator creates a site generator. An empty title falls back to
// the document's own title.
func NewGenerator(document *doc.Document, title string) *Generator {
	if title == "" {
		title = document.Title
	}
	return &Generator{document: document, title: title}
}

// GenerateCatalog builds the catalog from the parsed document.
func (g *Generator) GenerateCatalog() *Catalog {
	catalog := &Catalog{
		GeneratedAt: time.Now().UTC(),
		Title:       g.title,
		Sections:    make([]SectionDoc, 0, len(g.document.Sections)),
	}

	for _, s := range g.document.Sections {
		sd := SectionDoc{
			Heading:    s.Heading,
			Anchor:     s.Slug,
			Line:       s.Line,
			Paragraphs: make([]string, 0, len(s.Prose)),
			Examples:   make([]ExampleDoc, 0, len(s.Examples)),
		}
		for _, p := range s.Prose {
			sd.Paragraphs = append(sd.Paragraphs, p.Text)
		}
		for _, e := range s.Examples {
			sd.Examples = append(sd.Examples, ExampleDoc{
				Language: e.Language,
				SQL:      e.Content,
				Line:     e.Line,
			})
		}
		catalog.Sections = append(catalog.Sections, sd)
	}

	return catalog
}

// Build generates the static site to the output directory.
func (g *Generator) Build(outputDir string) error {
	catalog := g.GenerateCatalog()

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	dataDir := filepath.Join(outputDir, "data")
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tipsDir := filepath.Join(outputDir, "tips")
	if err := os.MkdirAll(tipsDir, 0750); err != nil {
		return fmt.Errorf("failed to create tips directory: %w", err)
	}

	catalogJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "catalog.json"), catalogJSON, 0600); err != nil {
		return fmt.Errorf("failed to write catalog.json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outputDir, "styles.css"), []byte(siteCSS), 0600); err != nil {
		return fmt.Errorf("failed to write styles.css: %w", err)
	}

	index, err := g.renderIndex(catalog)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "index.html"), index, 0600); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}

	// Render section pages concurrently
	var eg errgroup.Group
	for _, sd := range catalog.Sections {
		sd := sd
		eg.Go(func() error {
			page, err := g.renderSection(catalog, sd)
			if err != nil {
				return err
			}
			outPath := filepath.Join(tipsDir, sd.Anchor+".html")
			if err := os.WriteFile(outPath, page, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

func (g *Generator) renderIndex(catalog *Catalog) ([]byte, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, catalog); err != nil {
		return nil, fmt.Errorf("failed to render index: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderSection(catalog *Catalog, sd SectionDoc) ([]byte, error) {
	tmpl, err := template.New("section").Parse(sectionTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse section template: %w", err)
	}

	data := struct {
		Title   string
		Section SectionDoc
		All     []SectionDoc
	}{Title: catalog.Title, Section: sd, All: catalog.Sections}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", sd.Anchor, err)
	}
	return buf.Bytes(), nil
}

// Serve builds the site and serves it over HTTP.
func (g *Generator) Serve(outputDir string, port int) error {
	if err := g.Build(outputDir); err != nil {
		return err
	}
	return ServeFromFS(outputDir, port)
}

// ServeFromFS serves an already built site directory.
func ServeFromFS(outputDir string, port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving site at http://localhost%s\n", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           http.FileServer(http.Dir(outputDir)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
