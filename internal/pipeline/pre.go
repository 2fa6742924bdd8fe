package pipeline

import (
	"regexp"
	"strings"
)

var (
	preBlock = regexp.MustCompile(`(?is)<pre\b[^>]*>(.*?)</pre>`)
	preTag   = regexp.MustCompile(`(?i)</?pre\b[^>]*>`)
	brTag    = regexp.MustCompile(`(?i)<br\b[^>]*>`)
)

// preContent protects whitespace inside a preformatted body: spaces become
// sentinels, newlines become <br> and tabs become two non-breaking spaces.
var preContent = strings.NewReplacer(
	" ", spaceSentinel,
	"\n", "<br>",
	"\t", "&nbsp;&nbsp;",
)

// convertPre rewrites every pre element, in source order,
// into a div whose line structure survives the later whitespace passes.
// Bodies are spliced verbatim, so "$" in content is never expanded.
func (c *conversion) convertPre(text string) string {
	for {
		loc := preBlock.FindStringSubmatchIndex(text)
		if loc == nil {
			return text
		}

		body := brTag.ReplaceAllString(text[loc[2]:loc[3]], "\n")
		body = c.applyCallbacks(body)
		body = preContent.Replace(body)
		body = preTag.ReplaceAllString(body, "")

		text = text[:loc[0]] + "<div><br>" + body + "<br></div>" + text[loc[1]:]
	}
}
