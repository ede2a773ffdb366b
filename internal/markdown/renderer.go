// Package markdown renders post and article bodies to HTML with the site's
// block and inline conventions: highlighted code, anchored headings,
// responsive tables and images, and annotated external links.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Options configure a Renderer at construction time; rendering itself takes
// no per-call configuration.
type Options struct {
	// CodeStyle names the chroma style used for highlighted code blocks.
	// Empty selects "github".
	CodeStyle string
}

// Renderer converts Markdown to HTML. It holds no mutable state after
// construction and is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds the engine: GFM-style tables, strikethrough, bare-URL
// autolinking, footnotes, superscript and underline markup, plus the site's
// node renderer layered over goldmark's defaults.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
				extension.Footnote,
				Superscript,
				Underline,
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				renderer.WithNodeRenderers(
					util.Prioritized(newSiteRenderer(opts.CodeStyle), 100),
				),
			),
		),
	}
}

// Render converts a Markdown document body to HTML. Malformed Markdown never
// fails; the only error path is the underlying writer.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
