package pipeline

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-html2text/internal/textutil"
)

// Pipeline converts HTML fragments to plain text. A Pipeline is immutable
// after New and safe for concurrent use: each Run works on its own state.
type Pipeline struct {
	cfg   Config
	rules []callbackRule
}

// Result is the output of one conversion.
type Result struct {
	Text string
	// Links lists the footnote URLs collected in table mode, in order.
	Links []string
}

// New returns a Pipeline for cfg. Empty link mode defaults to inline.
// The links header and image prefix are emitted as given, so empty texts
// are simply left out.
func New(cfg Config) *Pipeline {
	if cfg.LinkMode == "" {
		cfg.LinkMode = LinkInline
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}

	return &Pipeline{
		cfg:   cfg,
		rules: buildCallbackRules(cfg.Elements),
	}
}

// Run converts html, resolving relative links against baseURL.
func (p *Pipeline) Run(html, baseURL string) Result {
	c := &conversion{
		cfg:     p.cfg,
		rules:   p.rules,
		baseURL: baseURL,
		links:   newLinkList(),
	}

	text := textutil.Clean(stripSentinels(html))
	text = c.convert(text, p.cfg.Width)
	text = textutil.NormalizeWhitespace(text)
	text = c.finalize(text, p.cfg.Width)

	p.cfg.Logger.Debug("converted html",
		"input_bytes", len(html),
		"output_bytes", len(text),
		"links", c.links.len(),
		"link_mode", string(p.cfg.LinkMode))

	return Result{Text: text, Links: c.links.urls}
}

// conversion carries the mutable state of a single Run.
type conversion struct {
	cfg     Config
	rules   []callbackRule
	baseURL string
	links   *linkList
}

// convert runs the tag-level passes. It recurses through blockquote bodies,
// which share the link list of the enclosing conversion.
func (c *conversion) convert(text string, width int) string {
	text = c.convertBlockquotes(text, width)
	text = c.convertPre(text)
	text = tagGap.ReplaceAllString(text, "><")
	text = textutil.DecodeSpecialChars(text)
	text = preprocess(text)
	text = c.applyCallbacks(text)
	text = residualTag.ReplaceAllString(text, "")
	text = applyRules(text, entityRules)
	text = textutil.DecodeEntities(text)
	text = unknownEntity.ReplaceAllString(text, "")
	text = newlineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
