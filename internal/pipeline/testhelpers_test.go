package pipeline

import "testing"

// testElements mirrors the element table the public package ships with.
func testElements() map[string]ElementConfig {
	block := ElementConfig{Case: CaseUpper, Prepend: "\n\n", Append: "\n\n"}
	return map[string]ElementConfig{
		"h1":     block,
		"h2":     block,
		"h3":     block,
		"h4":     {Case: CaseUpper},
		"h5":     block,
		"h6":     block,
		"th":     {Case: CaseUpper, Prepend: "\t\t", Append: "\n"},
		"strong": {Case: CaseUpper},
		"b":      {Case: CaseUpper},
		"li":     {Prepend: "\t* ", Append: "\n"},
		"i":      {Prepend: "_", Append: "_"},
		"em":     {Prepend: "_", Append: "_"},
	}
}

// convertHTML runs a pipeline built from cfg, defaulting the element table
// and the placeholder texts.
func convertHTML(t *testing.T, cfg Config, html, baseURL string) Result {
	t.Helper()
	if cfg.Elements == nil {
		cfg.Elements = testElements()
	}
	if cfg.LinksHeader == "" {
		cfg.LinksHeader = DefaultLinksHeader
	}
	if cfg.ImagePrefix == "" {
		cfg.ImagePrefix = DefaultImagePrefix
	}
	return New(cfg).Run(html, baseURL)
}

func mustReplacer(t *testing.T, pattern, replacement string) *Replacer {
	t.Helper()
	r, err := CompileReplace(pattern, replacement, "")
	if err != nil {
		t.Fatalf("CompileReplace(%q) unexpected error: %v", pattern, err)
	}
	return r
}
