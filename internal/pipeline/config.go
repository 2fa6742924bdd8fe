package pipeline

import "log/slog"

// LinkMode selects how a hyperlink destination is rendered next to its text.
type LinkMode string

// Link presentation modes.
const (
	LinkNone     LinkMode = "none"
	LinkInline   LinkMode = "inline"
	LinkNextLine LinkMode = "nextline"
	LinkTable    LinkMode = "table"
	LinkBBCode   LinkMode = "bbcode"
)

// CaseMode selects the case transform applied to an element's text.
type CaseMode string

// Case modes. The empty CaseMode means "not configured".
const (
	CaseUpper   CaseMode = "upper"
	CaseLower   CaseMode = "lower"
	CaseUcfirst CaseMode = "ucfirst"
	CaseTitle   CaseMode = "title"
	CaseNone    CaseMode = "none"
)

// ElementConfig controls how the text of one element is formatted.
type ElementConfig struct {
	Case    CaseMode
	Prepend string
	Append  string
	Replace *Replacer
}

// Config holds everything a Pipeline needs. It is read-only once passed to New.
type Config struct {
	LinkMode    LinkMode
	Width       int
	Elements    map[string]ElementConfig
	LinksHeader string
	ImagePrefix string
	Logger      *slog.Logger
}

// Usual placeholder texts resolved during finalization. Config does not
// apply them on its own.
const (
	DefaultLinksHeader = "\n\nLinks:\n------\n"
	DefaultImagePrefix = "Image: "
)
