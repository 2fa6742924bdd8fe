package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

// elementKind is the callback variant selected for a matched element.
type elementKind int

const (
	kindGeneric elementKind = iota
	kindParagraph
	kindLineBreak
	kindImage
	kindAnchor
)

// kindOf resolves a lower-cased element name to its callback variant.
func kindOf(name string) elementKind {
	switch name {
	case "p":
		return kindParagraph
	case "br":
		return kindLineBreak
	case "img":
		return kindImage
	case "a":
		return kindAnchor
	default:
		return kindGeneric
	}
}

// callbackRule matches one element. Every pattern names its groups:
// "element" (tag name), "tag" (raw start tag) and optionally "value" (body).
type callbackRule struct {
	pattern *regexp.Regexp
	element int
	tag     int
	value   int
}

func newCallbackRule(expr string) callbackRule {
	re := regexp.MustCompile(expr)
	return callbackRule{
		pattern: re,
		element: re.SubexpIndex("element"),
		tag:     re.SubexpIndex("tag"),
		value:   re.SubexpIndex("value"),
	}
}

// pairedRule matches <name ...>body</name> where the start tag is either bare
// or followed by a space and attributes.
func pairedRule(name string) callbackRule {
	q := regexp.QuoteMeta(name)
	return newCallbackRule(`(?i)(?P<tag><(?P<element>` + q + `)(?: [^>]*)?>)(?P<value>.*?)</` + q + `>`)
}

// builtinRules run in this order over the whole text; each rule sees the
// output of the previous one.
var builtinRules = []callbackRule{
	newCallbackRule(`(?i)(?P<tag><(?P<element>h[1-6])(?: [^>]*)?>)(?P<value>.*?)</h[1-6]>`),
	newCallbackRule(`(?is)[ ]*(?P<tag><(?P<element>p)(?: [^>]*)?>)(?P<value>.*?)</p>[ ]*`),
	newCallbackRule(`(?i)(?P<tag><(?P<element>br)\b[^>]*>)[ ]*`),
	newCallbackRule(`(?i)(?P<tag><(?P<element>img)\b[^>]*>)`),
	newCallbackRule(`(?i)(?P<tag><(?P<element>li)\b[^>]*>)(?P<value>.*?)</li>`),
	pairedRule("b"),
	pairedRule("strong"),
	pairedRule("th"),
	newCallbackRule(`(?i)(?P<tag><(?P<element>a)\s[^>]*>)(?P<value>.*?)</a>`),
	pairedRule("i"),
	pairedRule("em"),
}

// builtinElements lists the names already covered by builtinRules.
var builtinElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "br": true, "img": true, "li": true, "b": true,
	"strong": true, "th": true, "a": true, "i": true, "em": true,
}

// buildCallbackRules appends a paired rule for every configured element that
// has no builtin rule, in name order so conversions are deterministic.
func buildCallbackRules(elements map[string]ElementConfig) []callbackRule {
	var extra []string
	for name := range elements {
		if !builtinElements[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return builtinRules
	}
	sort.Strings(extra)

	rules := make([]callbackRule, 0, len(builtinRules)+len(extra))
	rules = append(rules, builtinRules...)
	for _, name := range extra {
		rules = append(rules, pairedRule(name))
	}
	return rules
}

// applyCallbacks runs every callback rule over text.
func (c *conversion) applyCallbacks(text string) string {
	for _, r := range c.rules {
		text = replaceAllSubmatchFunc(r.pattern, text, func(m []string) string {
			return c.dispatch(r, m)
		})
	}
	return text
}

// dispatch formats one matched element.
func (c *conversion) dispatch(r callbackRule, m []string) string {
	name := strings.ToLower(m[r.element])
	var value string
	if r.value >= 0 {
		value = m[r.value]
	}

	switch kindOf(name) {
	case kindParagraph:
		para := strings.ReplaceAll(value, "\n", " ")
		return "\n\n" + strings.Trim(para, " \t\n\r\x00\x0B") + "\n\n"
	case kindLineBreak:
		return "\n"
	case kindImage:
		attrs := tagAttrs(m[r.tag])
		return c.renderImage(attrs["alt"], attrs["src"])
	case kindAnchor:
		href := tagAttrs(m[r.tag])["href"]
		if href == "" {
			return m[0]
		}
		return c.renderLink(href, value, linkOverride(m[r.tag]))
	default:
		return formatElement(value, name, c.cfg.Elements)
	}
}

// replaceAllSubmatchFunc is regexp.ReplaceAllStringFunc with access to the
// submatches. The replacement is spliced in verbatim: no $ expansion happens.
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, fn func([]string) string) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(m))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
