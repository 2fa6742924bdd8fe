// Package textutil provides the codepoint-safe string primitives used by the
// conversion pipeline: length and substring by rune, trimming, case mapping,
// word wrapping, HTML entity handling and input sanitation.
//
// All offsets and widths in this package are expressed in Unicode codepoints,
// never in bytes.
package textutil
