package pipeline

import (
	"context"
	"regexp"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	// ==text== highlight syntax, rendered as a <mark> element.
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)
)

// normalizeMarkdown prepares Markdown source for Goldmark: line endings are
// unified, ==highlights== become <mark> elements and blank line runs are
// capped at one empty line.
func normalizeMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, "<mark>$1</mark>")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}
