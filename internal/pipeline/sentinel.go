package pipeline

import "strings"

// Sentinels use Unicode Private Use Area characters. They are never produced
// by HTML entity decoding and are ignored by every regular expression pass,
// so they survive until finalization resolves them.
const (
	spaceSentinel = "\uE000" // literal space inside preformatted content
	imageSentinel = "\uE001" // image label prefix
)

var sentinelStripper = strings.NewReplacer(spaceSentinel, "", imageSentinel, "")

// stripSentinels removes sentinel characters from untrusted input so they
// cannot be confused with the ones the pipeline inserts.
func stripSentinels(s string) string {
	return sentinelStripper.Replace(s)
}
