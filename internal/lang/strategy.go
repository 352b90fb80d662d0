package lang

import (
	"regexp"
	"strings"
	"unicode"
)

// Strategy guesses a language locally. An empty result means the strategy
// has no opinion and the next one in the pipeline is asked.
type Strategy interface {
	Name() string
	Detect(text string) string
}

// LocalPipeline returns the fixed local detection order: script ratio,
// then diacritics, then stop-word frequency.
func LocalPipeline(t *Tables) []Strategy {
	return []Strategy{
		NewScriptStrategy(t.Scripts),
		NewDiacriticStrategy(t.Diacritics),
		NewStopWordStrategy(t.StopWords),
	}
}

type scriptClass struct {
	lang   string
	tables []*unicode.RangeTable
}

// ScriptStrategy decides by the share of characters in a writing system
type ScriptStrategy struct {
	threshold float64
	classes   []scriptClass
}

// NewScriptStrategy builds a script-ratio strategy. Unknown script names
// are ignored.
func NewScriptStrategy(t ScriptTable) *ScriptStrategy {
	s := &ScriptStrategy{threshold: t.Threshold}
	for _, c := range t.Classes {
		sc := scriptClass{lang: c.Lang}
		for _, name := range c.Scripts {
			if rt, ok := unicode.Scripts[name]; ok {
				sc.tables = append(sc.tables, rt)
			}
		}
		if len(sc.tables) > 0 {
			s.classes = append(s.classes, sc)
		}
	}
	return s
}

func (s *ScriptStrategy) Name() string { return "script" }

// Detect returns the language of the first class whose share of the
// non-whitespace characters exceeds the threshold.
func (s *ScriptStrategy) Detect(text string) string {
	counts := make([]int, len(s.classes))
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		for i, c := range s.classes {
			if unicode.In(r, c.tables...) {
				counts[i]++
				break
			}
		}
	}
	if total == 0 {
		return ""
	}
	for i, c := range s.classes {
		if float64(counts[i])/float64(total) > s.threshold {
			return c.lang
		}
	}
	return ""
}

type diacriticClass struct {
	lang string
	re   *regexp.Regexp
}

// DiacriticStrategy matches language-specific accented characters
type DiacriticStrategy struct {
	classes []diacriticClass
}

// NewDiacriticStrategy compiles one character class per language
func NewDiacriticStrategy(classes []DiacriticClass) *DiacriticStrategy {
	s := &DiacriticStrategy{}
	for _, c := range classes {
		if c.Chars == "" {
			continue
		}
		s.classes = append(s.classes, diacriticClass{
			lang: c.Lang,
			re:   regexp.MustCompile("[" + regexp.QuoteMeta(c.Chars) + "]"),
		})
	}
	return s
}

func (s *DiacriticStrategy) Name() string { return "diacritics" }

// Detect returns the first language, in table order, whose characters occur
func (s *DiacriticStrategy) Detect(text string) string {
	for _, c := range s.classes {
		if c.re.MatchString(text) {
			return c.lang
		}
	}
	return ""
}

type stopWordSet struct {
	lang  string
	words map[string]struct{}
}

// StopWordStrategy scores texts against frequent-word lists
type StopWordStrategy struct {
	maxWords int
	sets     []stopWordSet
}

// NewStopWordStrategy builds lookup sets from the table
func NewStopWordStrategy(t StopWordTable) *StopWordStrategy {
	s := &StopWordStrategy{maxWords: t.MaxWords}
	for _, l := range t.Languages {
		set := stopWordSet{lang: l.Lang, words: make(map[string]struct{}, len(l.Words))}
		for _, w := range l.Words {
			set.words[strings.ToLower(w)] = struct{}{}
		}
		s.sets = append(s.sets, set)
	}
	return s
}

func (s *StopWordStrategy) Name() string { return "stopwords" }

// Detect picks the language with the highest ratio of stop-word matches to
// min(word count, max words). Ties keep the language listed first. Returns
// "" when no word matches any list.
func (s *StopWordStrategy) Detect(text string) string {
	words := Words(text)
	if len(words) == 0 {
		return ""
	}
	denom := len(words)
	if denom > s.maxWords {
		denom = s.maxWords
	}

	best, bestRatio := "", 0.0
	for _, set := range s.sets {
		matches := 0
		for _, w := range words {
			if _, ok := set.words[w]; ok {
				matches++
			}
		}
		ratio := float64(matches) / float64(denom)
		if ratio > bestRatio {
			best, bestRatio = set.lang, ratio
		}
	}
	return best
}

// Words splits text into lowercase word tokens
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
