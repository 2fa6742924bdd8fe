package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-html2text/internal/textutil"
)

var blockquoteTag = regexp.MustCompile(`(?i)</*blockquote[^>]*>`)

// convertBlockquotes replaces every top-level blockquote with a preformatted
// block holding its converted, quote-marked body. Nested blockquotes are
// handled by the recursive conversion of the outer body. A closing tag
// without a matching opening tag is ignored; an unclosed blockquote is left
// for the residual tag stripper.
func (c *conversion) convertBlockquotes(text string, width int) string {
	locs := blockquoteTag.FindAllStringIndex(text, -1)
	if locs == nil {
		return text
	}

	var b strings.Builder
	last, start, taglen, level := 0, 0, 0, 0
	for _, loc := range locs {
		if text[loc[0]+1] != '/' {
			if level == 0 {
				start = loc[0]
				taglen = loc[1] - loc[0]
			}
			level++
			continue
		}

		level--
		switch {
		case level < 0:
			level = 0
		case level == 0:
			b.WriteString(text[last:start])
			b.WriteString(c.quote(text[start+taglen:loc[0]], width))
			last = loc[1]
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

// quote converts a blockquote body and wraps it, marked, in a pre element.
// The body is wrapped two columns narrower so the markers fit the width.
func (c *conversion) quote(body string, width int) string {
	inner := 0
	if width > 2 {
		inner = width - 2
	}

	body = c.convert(body, inner)
	if inner > 0 {
		body = textutil.WordWrap(body, inner)
	}
	body = markQuoted(textutil.Trim(body))

	return "<pre>" + textutil.EscapeSpecialChars(body) + "</pre>"
}

// markQuoted prefixes every line with a quote marker. Lines already quoted
// gain one more level.
func markQuoted(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		switch {
		case line == "":
			lines[i] = ">"
		case strings.HasPrefix(line, ">"):
			lines[i] = ">" + line
		default:
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}
