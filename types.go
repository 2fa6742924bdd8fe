package html2text

import (
	"fmt"
	"regexp"
	"strings"
)

// LinkMode selects how a hyperlink destination is rendered next to its text.
type LinkMode string

// Link presentation modes.
const (
	LinkNone     LinkMode = "none"     // "text"
	LinkInline   LinkMode = "inline"   // "text [url]"
	LinkNextLine LinkMode = "nextline" // "text\n[url]"
	LinkTable    LinkMode = "table"    // "text [1]" plus a numbered list at the end
	LinkBBCode   LinkMode = "bbcode"   // "[url=url]text[/url]"
)

// Validate checks that m is a known link mode.
func (m LinkMode) Validate() error {
	switch m {
	case LinkNone, LinkInline, LinkNextLine, LinkTable, LinkBBCode:
		return nil
	}
	return fmt.Errorf("%w: %q (must be none, inline, nextline, table, or bbcode)", ErrInvalidLinkMode, string(m))
}

// ParseLinkMode converts a case-insensitive name into a LinkMode.
func ParseLinkMode(s string) (LinkMode, error) {
	m := LinkMode(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// CaseMode selects the case transform applied to an element's text.
// The zero value means "unset": headings fall back to upper case and other
// elements keep their text as-is.
type CaseMode string

// Case modes.
const (
	CaseUpper   CaseMode = "upper"
	CaseLower   CaseMode = "lower"
	CaseUcfirst CaseMode = "ucfirst" // lower case, then upper-case the first letter
	CaseTitle   CaseMode = "title"
	CaseNone    CaseMode = "none"
)

// Validate checks that c is empty or a known case mode.
func (c CaseMode) Validate() error {
	switch c {
	case "", CaseUpper, CaseLower, CaseUcfirst, CaseTitle, CaseNone:
		return nil
	}
	return fmt.Errorf("%w: %q (must be upper, lower, ucfirst, title, or none)", ErrInvalidCaseMode, string(c))
}

// Replace is a single pattern substitution applied to an element's text
// after case conversion. Pattern uses Perl-style syntax and Replacement may
// refer to groups as $1 or \1. Delimiter is the character that would enclose
// the pattern (default "@"); it must be escaped inside Pattern.
type Replace struct {
	Pattern     string
	Replacement string
	Delimiter   string
}

// ElementConfig controls how the text of one element is formatted.
type ElementConfig struct {
	Case    CaseMode
	Prepend string
	Append  string
	Replace *Replace
}

// merge returns e with every non-zero field of o applied over it.
func (e ElementConfig) merge(o ElementConfig) ElementConfig {
	if o.Case != "" {
		e.Case = o.Case
	}
	if o.Prepend != "" {
		e.Prepend = o.Prepend
	}
	if o.Append != "" {
		e.Append = o.Append
	}
	if o.Replace != nil {
		e.Replace = o.Replace
	}
	return e
}

// DefaultElements returns the built-in element formatting. The map is a
// fresh copy on every call.
func DefaultElements() map[string]ElementConfig {
	block := ElementConfig{Case: CaseUpper, Prepend: "\n\n", Append: "\n\n"}
	return map[string]ElementConfig{
		"h1":     block,
		"h2":     block,
		"h3":     block,
		"h4":     {Case: CaseUpper},
		"h5":     block,
		"h6":     block,
		"th":     {Case: CaseUpper, Prepend: "\t\t", Append: "\n"},
		"strong": {Case: CaseUpper},
		"b":      {Case: CaseUpper},
		"li":     {Prepend: "\t* ", Append: "\n"},
		"i":      {Prepend: "_", Append: "_"},
		"em":     {Prepend: "_", Append: "_"},
	}
}

var elementName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// validateElementName accepts lower-case tag names such as "h1" or "my-tag".
func validateElementName(name string) error {
	if !elementName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidElement, name)
	}
	return nil
}

// Input contains the document to convert. Set exactly one of HTML or
// Markdown; an Input with neither converts to empty text.
type Input struct {
	HTML     string // HTML document or fragment
	Markdown string // Markdown source, rendered to HTML first
	BaseURL  string // Resolves relative links (overrides WithBaseURL)
}

// Validate checks that at most one content field is set.
func (in Input) Validate() error {
	if in.HTML != "" && in.Markdown != "" {
		return ErrAmbiguousInput
	}
	return nil
}

// ConvertResult is the output of a conversion.
type ConvertResult struct {
	Text string
	// Links lists the footnote URLs in LinkTable mode, in first-seen order.
	// It is empty in every other mode.
	Links []string
}
