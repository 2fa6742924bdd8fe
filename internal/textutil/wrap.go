package textutil

import "strings"

// WordWrap breaks lines of s so that no line exceeds width codepoints.
// Lines are only broken at spaces; a single word longer than width is kept
// intact on its own line. Existing line breaks are preserved. A width of zero
// or less returns s unchanged.
func WordWrap(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if Len(line) > width {
			lines[i] = wrapLine(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// wrapLine greedily fills lines with space-separated words.
func wrapLine(line string, width int) string {
	words := strings.Split(line, " ")

	var b strings.Builder
	current := 0
	for i, word := range words {
		wl := Len(word)
		switch {
		case i == 0:
			b.WriteString(word)
			current = wl
		case current+1+wl > width:
			b.WriteByte('\n')
			b.WriteString(word)
			current = wl
		default:
			b.WriteByte(' ')
			b.WriteString(word)
			current += 1 + wl
		}
	}
	return b.String()
}
