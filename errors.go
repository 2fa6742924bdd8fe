package html2text

import (
	"errors"

	"github.com/alnah/go-html2text/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrFromFileUnsupported is returned by the legacy LoadHTML path when
	// asked to read from a file. Read the file yourself and pass its content.
	ErrFromFileUnsupported = errors.New("loading HTML from a file is not supported")

	// ErrAmbiguousInput indicates both HTML and Markdown were set on an Input.
	ErrAmbiguousInput = errors.New("input must set HTML or Markdown, not both")

	// ErrMarkdownRender indicates Markdown input could not be rendered.
	ErrMarkdownRender = pipeline.ErrMarkdownRender

	// Option validation errors.
	ErrInvalidLinkMode = errors.New("invalid link mode")
	ErrInvalidWidth    = errors.New("invalid wrap width")
	ErrInvalidCaseMode = errors.New("invalid case mode")
	ErrInvalidElement  = errors.New("invalid element name")
	ErrInvalidReplace  = pipeline.ErrInvalidReplace
)
