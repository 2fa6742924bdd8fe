package html2text

import (
	"context"
	"sync"
)

// Document holds one HTML source and caches its converted text.
// The text is computed on the first read and reused until the source or
// one of the document's settings changes. Safe for concurrent use.
type Document struct {
	mu      sync.Mutex
	conv    *Converter
	html    string
	baseURL string

	converted bool
	text      string
	links     []string
}

// NewDocument creates a Document that converts html with conv.
// A nil conv uses a Converter with default settings.
func NewDocument(conv *Converter, html string) *Document {
	if conv == nil {
		conv, _ = NewConverter() // defaults always validate
	}
	return &Document{conv: conv, html: html, baseURL: conv.cfg.baseURL}
}

// SetHTML replaces the source and clears the cached text.
func (d *Document) SetHTML(html string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.html = html
	d.reset()
}

// LoadHTML replaces the source like SetHTML.
//
// Deprecated: use SetHTML. Reading from a file is not supported; fromFile
// set to true returns ErrFromFileUnsupported and leaves the document as is.
func (d *Document) LoadHTML(html string, fromFile bool) error {
	if fromFile {
		return ErrFromFileUnsupported
	}
	d.SetHTML(html)
	return nil
}

// SetBaseURL sets the URL relative links are resolved against and clears
// the cached text.
func (d *Document) SetBaseURL(baseURL string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.baseURL = baseURL
	d.reset()
}

// SetLinksHeader changes the text placed before the link list and clears
// the cached text. An empty header omits it.
func (d *Document) SetLinksHeader(header string) error {
	return d.derive(WithLinksHeader(header))
}

// SetImagePrefix changes the label placed before image alt texts and clears
// the cached text. An empty prefix omits it.
func (d *Document) SetImagePrefix(prefix string) error {
	return d.derive(WithImagePrefix(prefix))
}

func (d *Document) derive(opts ...Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	conv, err := d.conv.with(opts...)
	if err != nil {
		return err
	}
	d.conv = conv
	d.reset()
	return nil
}

// Text returns the plain-text rendering of the document.
// Repeated calls without changes return the same text.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.convert()
	return d.text
}

// Links returns the footnote URLs collected in LinkTable mode.
func (d *Document) Links() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.convert()
	out := make([]string, len(d.links))
	copy(out, d.links)
	return out
}

// convert runs the conversion unless a cached result exists. Must hold d.mu.
func (d *Document) convert() {
	if d.converted {
		return
	}
	res, err := d.conv.Convert(context.Background(), Input{HTML: d.html, BaseURL: d.baseURL})
	if err != nil {
		d.conv.logger.Error("document conversion failed", "error", err)
		d.text, d.links = "", nil
	} else {
		d.text, d.links = res.Text, res.Links
	}
	d.converted = true
}

// reset clears the cached result. Must hold d.mu.
func (d *Document) reset() {
	d.converted = false
	d.text = ""
	d.links = nil
}
