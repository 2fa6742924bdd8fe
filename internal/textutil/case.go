package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case selects a case mapping for ConvertCase.
type Case int

// Supported case mappings.
const (
	CaseUpper Case = iota
	CaseLower
	CaseTitle
)

// ConvertCase applies a Unicode-aware case mapping to s.
// CaseTitle upper-cases the first letter of every word and lower-cases the rest.
func ConvertCase(s string, c Case) string {
	// cases.Caser is stateful, so one is built per call.
	switch c {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseTitle:
		return cases.Title(language.Und).String(s)
	default:
		return s
	}
}
