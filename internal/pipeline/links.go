package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-html2text/internal/fileutil"
)

var (
	ignoredLink    = regexp.MustCompile(`(?i)^(javascript:|mailto:|#)`)
	schemePrefix   = regexp.MustCompile(`(?i)^[a-z][a-z0-9.+-]+:`)
	linkModeMarker = regexp.MustCompile(`_html2text_link_(\w+)`)
)

// linkList accumulates footnote URLs for table mode in first-seen order.
type linkList struct {
	urls  []string
	index map[string]int
}

func newLinkList() *linkList {
	return &linkList{index: make(map[string]int)}
}

// add returns the 1-based position of url, appending it if unseen.
func (l *linkList) add(url string) int {
	if i, ok := l.index[url]; ok {
		return i + 1
	}
	l.index[url] = len(l.urls)
	l.urls = append(l.urls, url)
	return len(l.urls)
}

func (l *linkList) len() int {
	return len(l.urls)
}

// linkOverride extracts the per-anchor link mode marker from a raw start tag.
func linkOverride(tag string) LinkMode {
	m := linkModeMarker.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	return LinkMode(m[1])
}

// resolveURL makes href absolute against baseURL unless it already carries a
// scheme or is protocol-relative. Exactly one slash separates the two parts.
func resolveURL(href, baseURL string) string {
	if schemePrefix.MatchString(href) || strings.HasPrefix(href, "//") {
		return href
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(href, "/")
}

// renderLink renders an anchor. Script, mail and fragment links are returned
// as their bare display text. An unknown mode falls back to inline.
func (c *conversion) renderLink(href, display string, override LinkMode) string {
	mode := c.cfg.LinkMode
	if override != "" {
		mode = override
	}

	// Stray spaces are tolerated in hrefs.
	href = strings.ReplaceAll(href, " ", "")

	if ignoredLink.MatchString(href) {
		return display
	}
	if mode == LinkNone {
		return " " + display + " "
	}

	url := resolveURL(href, c.baseURL)

	switch mode {
	case LinkTable:
		return " " + display + " [" + strconv.Itoa(c.links.add(url)) + "] "
	case LinkNextLine:
		return " " + display + "\n[" + url + "] "
	case LinkBBCode:
		return " [url=" + url + "]" + display + "[/url] "
	default:
		return " " + display + " [" + url + "] "
	}
}

// renderImage renders an image as a labelled alt text, followed by its URL
// when the source is a remote reference. Images without alt text vanish.
func (c *conversion) renderImage(alt, src string) string {
	if alt == "" {
		return ""
	}
	if src != "" && isRemoteImage(src) {
		return " " + imageSentinel + `"` + alt + `" [` + src + "] "
	}
	return " " + imageSentinel + `"` + alt + `" `
}

// isRemoteImage accepts absolute http(s) and protocol-relative sources and
// rejects inline mail attachments (cid:).
func isRemoteImage(src string) bool {
	if strings.Contains(src, "cid:") {
		return false
	}
	return fileutil.IsURL(src) || strings.HasPrefix(src, "//")
}
