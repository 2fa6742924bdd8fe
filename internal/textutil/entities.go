package textutil

import (
	"strings"

	"golang.org/x/net/html"
)

// specialCharsDecoder reverses EscapeSpecialChars. It only knows the five
// markup-significant entities, everything else is left for DecodeEntities.
var specialCharsDecoder = strings.NewReplacer(
	"&amp;", "&",
	"&quot;", `"`,
	"&#039;", "'",
	"&#39;", "'",
	"&#x27;", "'",
	"&lt;", "<",
	"&gt;", ">",
)

var specialCharsEncoder = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// DecodeEntities resolves every named and numeric HTML character reference.
// Unknown references are left as-is.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// DecodeSpecialChars resolves only &amp;, &quot;, &#039;, &lt; and &gt;.
func DecodeSpecialChars(s string) string {
	return specialCharsDecoder.Replace(s)
}

// EscapeSpecialChars escapes &, ", ', < and > so the result can be embedded in
// markup without being mistaken for tags.
func EscapeSpecialChars(s string) string {
	return specialCharsEncoder.Replace(s)
}
