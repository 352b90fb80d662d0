// Package segment splits long texts into chunks small enough for the free
// translation endpoints while keeping paragraph and sentence boundaries.
package segment

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxChunkSize is the chunk budget in characters
const DefaultMaxChunkSize = 500

// mask temporarily replaces periods that belong to abbreviations
const mask = '\uE000'

// Abbreviations whose periods never end a sentence
var Abbreviations = []string{
	"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Sr.", "Jr.", "St.",
	"Inc.", "Ltd.", "Co.", "Corp.", "vs.", "etc.",
	"e.g.", "i.e.", "U.S.", "U.K.", "Ph.D.", "a.m.", "p.m.",
	"No.", "Vol.", "Fig.", "approx.",
}

var (
	paragraphSep = regexp.MustCompile(`[ \t\r]*\n[ \t\r]*\n\s*`)
	sentenceEnd  = regexp.MustCompile(`[.!?]+(\s+|$)`)
	abbrevRe     = compileAbbreviations(Abbreviations)
)

func compileAbbreviations(list []string) *regexp.Regexp {
	sorted := append([]string(nil), list...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, a := range sorted {
		quoted[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)`)
}

// Chunk is a piece of text plus the separator that followed it in the source
type Chunk struct {
	Text      string
	Delimiter string
}

// Blank reports whether the chunk is a whitespace-only placeholder
func (c Chunk) Blank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// String returns the chunk with its delimiter
func (c Chunk) String() string {
	return c.Text + c.Delimiter
}

// Segmenter splits text into chunks within a size budget
type Segmenter struct {
	MaxSize int
}

// New creates a segmenter. A non-positive size uses DefaultMaxChunkSize.
func New(maxSize int) *Segmenter {
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}
	return &Segmenter{MaxSize: maxSize}
}

// Segment splits text with the default budget
func Segment(text string) []Chunk {
	return New(DefaultMaxChunkSize).Segment(text)
}

// Segment trims text and splits it into chunks. Text under the budget is
// returned as a single chunk. Longer text is split on blank lines, and
// paragraphs still over budget are split into sentences packed greedily.
// Joining every chunk's Text and Delimiter reproduces the trimmed input.
func (s *Segmenter) Segment(text string) []Chunk {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < s.MaxSize {
		return []Chunk{{Text: trimmed}}
	}

	var chunks []Chunk
	for _, para := range splitParagraphs(trimmed) {
		if utf8.RuneCountInString(para.Text) <= s.MaxSize {
			chunks = append(chunks, para)
			continue
		}
		packed := pack(SplitSentences(para.Text), s.MaxSize)
		packed[len(packed)-1].Delimiter += para.Delimiter
		chunks = append(chunks, packed...)
	}
	return chunks
}

func splitParagraphs(text string) []Chunk {
	var out []Chunk
	last := 0
	for _, loc := range paragraphSep.FindAllStringIndex(text, -1) {
		out = append(out, Chunk{Text: text[last:loc[0]], Delimiter: text[loc[0]:loc[1]]})
		last = loc[1]
	}
	return append(out, Chunk{Text: text[last:]})
}

// SplitSentences splits text at sentence terminators followed by whitespace
// and an uppercase letter, or by the end of the text. Periods of known
// abbreviations are not treated as terminators. The whitespace after each
// sentence becomes its Delimiter.
func SplitSentences(text string) []Chunk {
	masked := MaskAbbreviations(text)

	var out []Chunk
	start := 0
	for _, m := range sentenceEnd.FindAllStringSubmatchIndex(masked, -1) {
		wsStart, end := m[2], m[3]
		if end < len(masked) {
			r, _ := utf8.DecodeRuneInString(masked[end:])
			if !unicode.IsUpper(r) {
				continue
			}
		}
		out = append(out, Chunk{
			Text:      UnmaskAbbreviations(masked[start:wsStart]),
			Delimiter: masked[wsStart:end],
		})
		start = end
	}
	if start < len(masked) {
		out = append(out, Chunk{Text: UnmaskAbbreviations(masked[start:])})
	}
	return out
}

// Sentences returns the sentence texts of text without delimiters
func Sentences(text string) []string {
	parts := SplitSentences(text)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Text
	}
	return out
}

// MaskAbbreviations hides the periods of known abbreviations so they are
// not taken for sentence ends. UnmaskAbbreviations restores them.
func MaskAbbreviations(text string) string {
	return abbrevRe.ReplaceAllStringFunc(text, func(a string) string {
		return strings.ReplaceAll(a, ".", string(mask))
	})
}

func UnmaskAbbreviations(text string) string {
	return strings.ReplaceAll(text, string(mask), ".")
}

// pack greedily merges sentences into chunks of at most budget runes. A
// sentence longer than the budget becomes a chunk of its own.
func pack(sentences []Chunk, budget int) []Chunk {
	var out []Chunk
	var cur strings.Builder
	curLen, delim, has := 0, "", false

	for _, sent := range sentences {
		n := utf8.RuneCountInString(sent.Text)
		if has && curLen+utf8.RuneCountInString(delim)+n > budget {
			out = append(out, Chunk{Text: cur.String(), Delimiter: delim})
			cur.Reset()
			curLen, delim, has = 0, "", false
		}
		if has {
			cur.WriteString(delim)
			curLen += utf8.RuneCountInString(delim)
		}
		cur.WriteString(sent.Text)
		curLen += n
		delim = sent.Delimiter
		has = true
	}
	if has {
		out = append(out, Chunk{Text: cur.String(), Delimiter: delim})
	}
	return out
}
