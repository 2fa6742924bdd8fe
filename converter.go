package html2text

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/alnah/go-html2text/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.MarkdownRenderer = (*pipeline.GoldmarkRenderer)(nil)

// Converter turns HTML (or Markdown) into plain text.
// A Converter is immutable once created and safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	pipeline *pipeline.Pipeline
	renderer pipeline.MarkdownRenderer
	logger   *slog.Logger
}

// NewConverter creates a Converter with the default element table and inline
// links, then applies opts. Every option is validated here, so a Converter
// never fails on a bad setting later.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	return build(c.cfg)
}

// build validates cfg and compiles it into a ready Converter.
func build(cfg converterConfig) (*Converter, error) {
	if err := cfg.linkMode.Validate(); err != nil {
		return nil, err
	}
	if cfg.width < 0 {
		return nil, fmt.Errorf("%w: %d (must be 0 or more)", ErrInvalidWidth, cfg.width)
	}

	elements, err := compileElements(cfg.elements)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Converter{
		cfg: cfg,
		pipeline: pipeline.New(pipeline.Config{
			LinkMode:    pipeline.LinkMode(cfg.linkMode),
			Width:       cfg.width,
			Elements:    elements,
			LinksHeader: cfg.linksHeader,
			ImagePrefix: cfg.imagePrefix,
			Logger:      logger,
		}),
		renderer: pipeline.NewGoldmarkRenderer(),
		logger:   logger,
	}, nil
}

// compileElements validates the element table and compiles replace patterns.
// Names are checked in sorted order so the reported error is deterministic.
func compileElements(elements map[string]ElementConfig) (map[string]pipeline.ElementConfig, error) {
	names := make([]string, 0, len(elements))
	for name := range elements {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]pipeline.ElementConfig, len(elements))
	for _, name := range names {
		e := elements[name]
		if err := validateElementName(name); err != nil {
			return nil, err
		}
		if err := e.Case.Validate(); err != nil {
			return nil, fmt.Errorf("element %s: %w", name, err)
		}

		pe := pipeline.ElementConfig{
			Case:    pipeline.CaseMode(e.Case),
			Prepend: e.Prepend,
			Append:  e.Append,
		}
		if e.Replace != nil {
			r, err := pipeline.CompileReplace(e.Replace.Pattern, e.Replace.Replacement, e.Replace.Delimiter)
			if err != nil {
				return nil, fmt.Errorf("element %s: %w", name, err)
			}
			pe.Replace = r
		}
		out[name] = pe
	}
	return out, nil
}

// with derives a new Converter from c with opts applied on top of its settings.
func (c *Converter) with(opts ...Option) (*Converter, error) {
	d := &Converter{cfg: c.cfg.clone()}
	for _, opt := range opts {
		opt(d)
	}
	return build(d.cfg)
}

// Convert converts input and returns the text along with the collected
// footnote links. Markdown input is rendered to HTML first.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html := input.HTML
	if input.Markdown != "" {
		html, err = c.renderer.ToHTML(ctx, input.Markdown)
		if err != nil {
			return nil, fmt.Errorf("rendering markdown: %w", err)
		}
	}

	baseURL := input.BaseURL
	if baseURL == "" {
		baseURL = c.cfg.baseURL
	}

	res := c.pipeline.Run(html, baseURL)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &ConvertResult{Text: res.Text, Links: res.Links}, nil
}

// ConvertString converts an HTML string with the converter's base URL.
func (c *Converter) ConvertString(html string) string {
	return c.pipeline.Run(html, c.cfg.baseURL).Text
}

// Convert is a shortcut that builds a Converter from opts and converts html.
func Convert(html string, opts ...Option) (string, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return "", err
	}
	return c.ConvertString(html), nil
}
