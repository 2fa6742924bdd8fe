package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Len returns the number of codepoints in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Trim removes leading and trailing Unicode whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// UcFirst upper-cases the first codepoint of s and leaves the rest untouched.
func UcFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
