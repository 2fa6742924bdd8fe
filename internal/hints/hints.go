// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-html2text/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsupportedInput returns hints for input files the converter cannot read.
func ForUnsupportedInput(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported: " + strings.Join(supported, ", ") + "; use - to read stdin")
}

// ForNoInputs returns hints when a directory holds nothing to convert.
func ForNoInputs() string {
	return format("only .html, .htm, .md and .markdown files are converted")
}

// ForLinkMode returns hints for an unknown link mode.
func ForLinkMode() string {
	return format("valid modes: none, inline, nextline, table, bbcode")
}

// ForReplacePattern returns hints for replace patterns that fail to compile.
func ForReplacePattern(delimiter string) string {
	if delimiter == "" {
		delimiter = "@"
	}
	return formatHints([]string{
		"escape the delimiter as \\" + delimiter + " inside the pattern",
		"set replace.delimiter to a character the pattern does not use",
	})
}

// ForStdinTerminal returns a hint when stdin is read interactively.
func ForStdinTerminal() string {
	return format("pipe HTML into html2text, or pass a file or directory")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
