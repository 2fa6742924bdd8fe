package html2text

import "log/slog"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the validated settings of a Converter.
type converterConfig struct {
	linkMode    LinkMode
	width       int
	elements    map[string]ElementConfig
	linksHeader string
	imagePrefix string
	baseURL     string
	logger      *slog.Logger
}

// Defaults for the texts emitted around links and images.
const (
	DefaultLinksHeader = "\n\nLinks:\n------\n"
	DefaultImagePrefix = "Image: "
)

func defaultConfig() converterConfig {
	return converterConfig{
		linkMode:    LinkInline,
		elements:    DefaultElements(),
		linksHeader: DefaultLinksHeader,
		imagePrefix: DefaultImagePrefix,
	}
}

// clone returns a copy whose element map can be modified independently.
func (cfg converterConfig) clone() converterConfig {
	elements := make(map[string]ElementConfig, len(cfg.elements))
	for name, e := range cfg.elements {
		elements[name] = e
	}
	cfg.elements = elements
	return cfg
}

// WithLinkMode sets how link destinations are rendered (default LinkInline).
func WithLinkMode(m LinkMode) Option {
	return func(c *Converter) {
		c.cfg.linkMode = m
	}
}

// WithWidth wraps the output at width codepoints. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(c *Converter) {
		c.cfg.width = width
	}
}

// WithElements merges elements over the current element table field by
// field: empty fields keep their previous value. Names are lower-cased tags.
func WithElements(elements map[string]ElementConfig) Option {
	return func(c *Converter) {
		for name, e := range elements {
			c.cfg.elements[name] = c.cfg.elements[name].merge(e)
		}
	}
}

// WithElement replaces the formatting of one element entirely. An empty
// ElementConfig leaves the element's text untouched.
func WithElement(name string, e ElementConfig) Option {
	return func(c *Converter) {
		c.cfg.elements[name] = e
	}
}

// WithLinksHeader sets the text placed before the link list in LinkTable mode.
// An empty header omits it; DefaultLinksHeader applies when the option is
// not used.
func WithLinksHeader(header string) Option {
	return func(c *Converter) {
		c.cfg.linksHeader = header
	}
}

// WithImagePrefix sets the label placed before image alt texts.
// An empty prefix omits it; DefaultImagePrefix applies when the option is
// not used.
func WithImagePrefix(prefix string) Option {
	return func(c *Converter) {
		c.cfg.imagePrefix = prefix
	}
}

// WithBaseURL sets the URL relative links are resolved against.
// Input.BaseURL takes precedence for a single conversion.
func WithBaseURL(baseURL string) Option {
	return func(c *Converter) {
		c.cfg.baseURL = baseURL
	}
}

// WithLogger sets the logger for debug records. Nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}
