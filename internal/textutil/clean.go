package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const bom = "\uFEFF"

// Clean sanitizes raw input: invalid UTF-8 sequences, byte order marks and
// stray control characters are dropped, the text is NFC-normalized and exotic
// whitespace is folded to ASCII spaces. Newlines, carriage returns and tabs
// are preserved.
func Clean(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, bom, "")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = norm.NFC.String(s)
	return NormalizeWhitespace(s)
}

// NormalizeWhitespace replaces non-ASCII space separators (no-break space,
// en/em spaces, ideographic space, ...) and zero-width spaces with a plain
// ASCII space. Line breaks and tabs are left alone.
func NormalizeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 {
			return r
		}
		if unicode.Is(unicode.Zs, r) {
			return ' '
		}
		switch r {
		case '\u200B', '\u2028', '\u2029', '\u0085':
			return ' '
		}
		return r
	}, s)
}
