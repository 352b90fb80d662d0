package format

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"codeberg.org/snonux/totaltranslate/internal/segment"
)

// Rule is a named pure text transformation
type Rule struct {
	Name  string
	Apply func(string) string
}

// Apply runs rules in order
func Apply(rules []Rule, text string) string {
	for _, r := range rules {
		text = r.Apply(text)
	}
	return text
}

// PostprocessRules is the default cleanup applied to joined translations
var PostprocessRules = []Rule{
	{Name: "dedupe-sentences", Apply: DedupeSentences},
	{Name: "capitalize-sentences", Apply: CapitalizeSentences},
	{Name: "punctuation-spacing", Apply: PunctuationSpacing},
	{Name: "collapse-whitespace", Apply: CollapseWhitespace},
}

// Postprocess applies PostprocessRules and trims the result
func Postprocess(text string) string {
	return strings.TrimSpace(Apply(PostprocessRules, text))
}

var (
	lineBreaks     = regexp.MustCompile(`\n+`)
	sentenceStart  = regexp.MustCompile(`^(\s*)(\p{Ll})`)
	afterTerminal  = regexp.MustCompile(`([.!?]+\s+)(\p{Ll})`)
	spaceBefore    = regexp.MustCompile(`[ \t]+([,.;:!?])`)
	spaceAfterEnd  = regexp.MustCompile(`([.!?])[ \t]{2,}`)
	missingSpace   = regexp.MustCompile(`(\p{Ll}[.!?]+)(\p{Lu}\p{Ll})`)
	horizontalRuns = regexp.MustCompile(`[ \t]{2,}`)
)

// DedupeSentences drops every sentence whose lowercase, whitespace
// collapsed form already appeared earlier in the text. Line breaks are
// kept so the paragraph layout survives.
func DedupeSentences(text string) string {
	seen := make(map[string]struct{})
	var b strings.Builder

	last := 0
	for _, loc := range append(lineBreaks.FindAllStringIndex(text, -1), []int{len(text), len(text)}) {
		line := text[last:loc[0]]
		var kept []segment.Chunk
		for _, s := range segment.SplitSentences(line) {
			key := strings.Join(strings.Fields(strings.ToLower(s.Text)), " ")
			if key != "" {
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
			}
			kept = append(kept, s)
		}
		for i, s := range kept {
			b.WriteString(s.Text)
			if i < len(kept)-1 {
				b.WriteString(s.Delimiter)
			}
		}
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	return b.String()
}

// CapitalizeSentences uppercases the first letter of the text and of every
// sentence following a terminator. Abbreviation periods are not terminators.
func CapitalizeSentences(text string) string {
	upper := func(prefixed string, re *regexp.Regexp) string {
		return re.ReplaceAllStringFunc(prefixed, func(m string) string {
			r, size := utf8.DecodeLastRuneInString(m)
			return m[:len(m)-size] + string(unicode.ToUpper(r))
		})
	}
	masked := segment.MaskAbbreviations(text)
	return segment.UnmaskAbbreviations(upper(upper(masked, sentenceStart), afterTerminal))
}

// PunctuationSpacing removes spaces before punctuation and leaves exactly
// one space after sentence terminators
func PunctuationSpacing(text string) string {
	text = spaceBefore.ReplaceAllString(text, "$1")
	text = spaceAfterEnd.ReplaceAllString(text, "$1 ")
	return missingSpace.ReplaceAllString(text, "$1 $2")
}

// CollapseWhitespace squeezes runs of spaces and tabs and limits blank
// lines to one
func CollapseWhitespace(text string) string {
	text = horizontalRuns.ReplaceAllString(text, " ")
	return excessNewlines.ReplaceAllString(text, "\n\n")
}
