package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/alnah/go-html2text/internal/textutil"
)

// ErrInvalidReplace indicates an element replace pattern could not be compiled.
var ErrInvalidReplace = errors.New("invalid replace pattern")

// replaceTimeout bounds a single user-supplied replacement so a pathological
// backtracking pattern cannot stall a conversion.
const replaceTimeout = time.Second

// defaultDelimiter is assumed when a replace rule does not name one.
const defaultDelimiter = "@"

var (
	tagChunk         = regexp.MustCompile(`<[^>]*>`)
	backslashGroupRe = regexp.MustCompile(`\\(\d{1,2})`)
)

// Replacer applies a single pattern substitution with Perl-compatible
// semantics (backreferences, lookaround, lazy quantifiers).
type Replacer struct {
	re          *regexp2.Regexp
	replacement string
}

// CompileReplace compiles pattern as if it were written between two
// delimiter characters. An unescaped delimiter inside the pattern is an error,
// as it would terminate the expression early. Backslash group references in
// replacement (\1) are accepted alongside $1.
func CompileReplace(pattern, replacement, delimiter string) (*Replacer, error) {
	if delimiter == "" {
		delimiter = defaultDelimiter
	}
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidReplace)
	}
	if hasUnescaped(pattern, delimiter) {
		return nil, fmt.Errorf("%w: %q contains unescaped delimiter %q", ErrInvalidReplace, pattern, delimiter)
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReplace, err)
	}
	re.MatchTimeout = replaceTimeout

	return &Replacer{
		re:          re,
		replacement: backslashGroupRe.ReplaceAllString(replacement, "$${$1}"),
	}, nil
}

// Apply returns s with every match replaced. On a matching timeout the input
// is returned unchanged.
func (r *Replacer) Apply(s string) string {
	out, err := r.re.Replace(s, r.replacement, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// hasUnescaped reports whether delim occurs in s without a preceding backslash.
func hasUnescaped(s, delim string) bool {
	for i := 0; i < len(s); {
		if s[i] == '\\' {
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], delim) {
			return true
		}
		i++
	}
	return false
}

// isHeading reports whether name is h1 through h6.
func isHeading(name string) bool {
	return len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6'
}

// formatElement renders the inner text of element name according to its
// configuration. Elements without configuration are returned unchanged,
// except headings which default to upper case.
func formatElement(value, name string, elements map[string]ElementConfig) string {
	cfg, ok := elements[name]
	if !ok && !isHeading(name) {
		return value
	}
	if cfg.Case == "" && isHeading(name) {
		cfg.Case = CaseUpper
	}

	if cfg.Case != "" && cfg.Case != CaseNone {
		value = applyCase(value, cfg.Case)
	}
	if cfg.Replace != nil {
		value = cfg.Replace.Apply(value)
	}

	return cfg.Prepend + value + cfg.Append
}

// applyCase transforms the text between tags, leaving the tags themselves
// untouched. Ucfirst lower-cases everything and then capitalizes only the
// first codepoint of the whole result.
func applyCase(s string, mode CaseMode) string {
	var c textutil.Case
	switch mode {
	case CaseUpper:
		c = textutil.CaseUpper
	case CaseLower, CaseUcfirst:
		c = textutil.CaseLower
	case CaseTitle:
		c = textutil.CaseTitle
	default:
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range tagChunk.FindAllStringIndex(s, -1) {
		b.WriteString(convertChunk(s[last:loc[0]], c))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(convertChunk(s[last:], c))

	out := b.String()
	if mode == CaseUcfirst {
		out = textutil.UcFirst(out)
	}
	return out
}

func convertChunk(s string, c textutil.Case) string {
	if s == "" {
		return s
	}
	return textutil.ConvertCase(textutil.DecodeEntities(s), c)
}
