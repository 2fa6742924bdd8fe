package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownRender indicates Markdown could not be rendered to HTML.
var ErrMarkdownRender = errors.New("markdown rendering failed")

// MarkdownRenderer renders Markdown to an HTML fragment.
type MarkdownRenderer interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkRenderer renders Markdown with goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions,
// footnotes and class-based syntax highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // no inline styles to strip
				),
			),
		),
		goldmark.WithRendererOptions(
			// Raw HTML in the source is converted like any other markup.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// ToHTML renders content to an HTML fragment.
// Goldmark does not take a context, so rendering runs in a goroutine and the
// caller returns as soon as ctx is done.
func (r *GoldmarkRenderer) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content = normalizeMarkdown(ctx, content)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
