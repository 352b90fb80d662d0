package format

import (
	"regexp"
	"strings"
	"unicode"

	"codeberg.org/snonux/totaltranslate/internal/segment"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Join concatenates chunks with their original delimiters. Runs of three
// or more newlines collapse to a single blank line.
func Join(chunks []segment.Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
		b.WriteString(c.Delimiter)
	}
	return excessNewlines.ReplaceAllString(b.String(), "\n\n")
}

// SplitEdges separates leading and trailing whitespace from the core text
func SplitEdges(s string) (lead, core, trail string) {
	left := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead = s[:len(s)-len(left)]
	core = strings.TrimRightFunc(left, unicode.IsSpace)
	trail = left[len(core):]
	return lead, core, trail
}

// Restore reattaches the original edges around the trimmed text
func Restore(lead, text, trail string) string {
	return lead + strings.TrimSpace(text) + trail
}
