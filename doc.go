// Package html2text converts HTML documents to readable plain text.
//
// # Quick Start
//
// Convert a fragment with default settings:
//
//	text, err := html2text.Convert("<h1>Hello</h1><p>World</p>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text) // HELLO\n\nWorld
//
// For repeated conversions, create a Converter once and reuse it. A
// Converter is immutable and safe for concurrent use:
//
//	conv, err := html2text.NewConverter(
//	    html2text.WithLinkMode(html2text.LinkTable),
//	    html2text.WithWidth(72),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, html2text.Input{
//	    HTML:    page,
//	    BaseURL: "https://example.com/",
//	})
//
// Markdown sources are rendered to HTML with goldmark first:
//
//	result, err := conv.Convert(ctx, html2text.Input{Markdown: "# Notes"})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Input sanitation (invalid UTF-8, BOM, control characters)
//  2. Blockquotes, converted recursively into "> " prefixed text
//  3. Preformatted blocks, whose whitespace is protected
//  4. Block element rules (head, script, style, lists, tables, rules)
//  5. Element formatting (headings, paragraphs, images, links, emphasis)
//  6. Tag stripping and entity decoding
//  7. Finalization (link table, line trimming, word wrap)
//
// Malformed markup never fails a conversion. Unknown tags are removed and
// unknown entities are dropped.
//
// # Links
//
// LinkMode selects how hyperlink destinations are rendered:
//
//	LinkNone      text
//	LinkInline    text [url]
//	LinkNextLine  text\n[url]
//	LinkTable     text [1] with a numbered list at the end
//	LinkBBCode    [url=url]text[/url]
//
// A single anchor can override the mode with a class token such as
// "_html2text_link_none". Relative hrefs are resolved against the base URL;
// mailto:, javascript: and fragment links render as text only.
//
// # Element Formatting
//
// Each element can change case, add text around its content and apply one
// regular expression substitution:
//
//	conv, err := html2text.NewConverter(
//	    html2text.WithElements(map[string]html2text.ElementConfig{
//	        "h1":   {Case: html2text.CaseTitle},
//	        "mark": {Prepend: "*", Append: "*"},
//	    }),
//	)
//
// WithElements merges over the defaults field by field, while WithElement
// replaces one element's settings entirely.
//
// # Documents
//
// Document keeps one source and caches its text until the source changes:
//
//	doc := html2text.NewDocument(conv, page)
//	fmt.Println(doc.Text())
//	doc.SetHTML(other) // next Text() converts again
package html2text
