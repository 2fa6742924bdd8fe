package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-html2text/internal/textutil"
)

var (
	blankRun      = regexp.MustCompile(`\n\s+\n`)
	newlineRun    = regexp.MustCompile(`\n{3,}`)
	residualTag   = regexp.MustCompile(`(?s)<[/!]?\w+[^>]*>|<!--.*?-->`)
	unknownEntity = regexp.MustCompile(`&[a-zA-Z0-9]{2,6};`)
	tagGap        = regexp.MustCompile(`>\s+<`)
)

// finalize resolves placeholders, appends the link table and normalizes
// blank lines. The result is wrapped when width is positive.
func (c *conversion) finalize(text string, width int) string {
	text = strings.ReplaceAll(text, imageSentinel, c.cfg.ImagePrefix)

	if c.links.len() > 0 {
		var b strings.Builder
		b.WriteString(text)
		b.WriteString(c.cfg.LinksHeader)
		for i, url := range c.links.urls {
			b.WriteString("[" + strconv.Itoa(i+1) + "] " + url + "\n")
		}
		text = b.String()
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = textutil.Trim(line)
	}
	text = strings.Join(lines, "\n")

	text = blankRun.ReplaceAllString(text, "\n\n")
	text = newlineRun.ReplaceAllString(text, "\n\n")
	text = textutil.Trim(text)
	text = strings.ReplaceAll(text, spaceSentinel, " ")

	if width > 0 {
		text = textutil.WordWrap(text, width)
	}
	return text
}
