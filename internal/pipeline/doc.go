// Package pipeline implements the HTML-to-text conversion pipeline.
//
// A conversion is an ordered sequence of text passes, each consuming the
// output of the previous one:
//   - blockquote extraction (recursive, see blockquote.go)
//   - preformatted block protection (see pre.go)
//   - block-level tag normalization (see preprocess.go)
//   - inline element callbacks: headings, paragraphs, breaks, images,
//     anchors and configured elements (see callback.go)
//   - residual tag stripping and entity resolution
//   - finalization: placeholder resolution, link footer, blank-line
//     normalization and optional word wrapping (see finalize.go)
//
// Content that must survive intermediate passes untouched is marked with
// Private Use Area sentinels and only resolved during finalization.
//
// Markdown input is first rendered to HTML with Goldmark (see md2html.go).
package pipeline
