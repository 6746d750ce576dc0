// Package render turns chapter content into the HTML stored as a chapter's
// htmlContent.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts chapter text to HTML. Every non-blank line becomes its own
// paragraph and inline Markdown (emphasis, strikethrough, links) is honored.
// Raw HTML in the text is dropped.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
		),
	}
}

// Chapter renders one chapter's content.
func (r *Renderer) Chapter(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(paragraphs(content)), &buf); err != nil {
		return "", fmt.Errorf("convert chapter: %w", err)
	}
	return buf.String(), nil
}

// paragraphs separates lines with blank lines so each is its own paragraph.
// ASCII indentation is stripped so indented lines are not read as code blocks;
// ideographic spaces are kept.
func paragraphs(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimLeft(strings.TrimRight(line, " \t"), " \t")
		if strings.Trim(line, "　") == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n\n")
}
