package pipeline

import "regexp"

// rule is a literal pattern replacement. Replacements may reference capture
// groups with ${n}.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// blockRules normalize block-level markup. Order matters: line breaks are
// flattened first so the lazy body patterns below can span source lines.
var blockRules = []rule{
	{regexp.MustCompile(`\r`), ""},
	{regexp.MustCompile(`[\n\t]+`), " "},
	{regexp.MustCompile(`(?i)<head\b[^>]*>.*?</head>`), ""},
	{regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`), ""},
	{regexp.MustCompile(`(?i)<style\b[^>]*>.*?</style>`), ""},
	{regexp.MustCompile(`(?i)<ul\b[^>]*>|</ul>`), "\n\n"},
	{regexp.MustCompile(`(?i)<ol\b[^>]*>|</ol>`), "\n\n"},
	{regexp.MustCompile(`(?i)<dl\b[^>]*>|</dl>`), "\n\n"},
	{regexp.MustCompile(`(?i)<dd\b[^>]*>(.*?)</dd>`), "${1}\n"},
	{regexp.MustCompile(`(?i)<dt\b[^>]*>(.*?)</dt>`), "* ${1} "},
	{regexp.MustCompile(`(?i)<hr\b[^>]*>`), "\n-------------------------\n"},
	{regexp.MustCompile(`(?i)<div\b[^>]*>`), "<div>\n"},
	{regexp.MustCompile(`(?i)<table\b[^>]*>|</table>`), "\n\n"},
	{regexp.MustCompile(`(?i)<tr\b[^>]*>|</tr>`), "\n"},
	{regexp.MustCompile(`(?i)<td\b[^>]*>(.*?)</td>`), "${1}\n"},
	{regexp.MustCompile(`(?i)<span class="_html2text_ignore">.+?</span>`), ""},
}

// entityRules run after tags are stripped and before generic entity decoding.
var entityRules = []rule{
	{regexp.MustCompile(`&#153;`), "™"},
	{regexp.MustCompile(`&#151;`), "—"},
	{regexp.MustCompile(`(?i)&nbsp;`), spaceSentinel},
	{regexp.MustCompile(`[ ]{2,}`), " "},
}

// preprocess applies the block-level rules in order.
func preprocess(text string) string {
	return applyRules(text, blockRules)
}

func applyRules(text string, rules []rule) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}
