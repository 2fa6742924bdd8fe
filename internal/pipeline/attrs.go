package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// tagAttrs tokenizes a single start tag and returns its attributes with
// lower-cased keys and unescaped values. Only the first token is inspected.
func tagAttrs(tag string) map[string]string {
	z := html.NewTokenizer(strings.NewReader(tag))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return nil
	}

	_, hasAttr := z.TagName()
	attrs := make(map[string]string)
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if _, seen := attrs[string(key)]; !seen {
			attrs[string(key)] = string(val)
		}
	}
	return attrs
}
