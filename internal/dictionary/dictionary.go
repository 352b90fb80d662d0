// Package dictionary is the terminal fallback of the translation chain: a
// small static phrase table consulted when every provider failed. Lookups
// never fail; a miss returns the original text.
package dictionary

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed phrases.yaml
var defaultPhrasesYAML []byte

var (
	wordRe        = regexp.MustCompile(`[\p{L}']+`)
	trailingPunct = regexp.MustCompile(`[\s.,;:!?…]+$`)
)

// Dictionary maps normalized phrases to translations per target language
type Dictionary struct {
	entries map[string]map[string]string
}

// New builds a dictionary from target -> phrase -> translation entries
func New(entries map[string]map[string]string) *Dictionary {
	d := &Dictionary{entries: make(map[string]map[string]string, len(entries))}
	for target, phrases := range entries {
		t := strings.ToLower(strings.TrimSpace(target))
		if d.entries[t] == nil {
			d.entries[t] = make(map[string]string, len(phrases))
		}
		for phrase, translation := range phrases {
			d.entries[t][normalize(phrase)] = translation
		}
	}
	return d
}

// Default returns the dictionary compiled into the binary
func Default() *Dictionary {
	d, err := Parse(defaultPhrasesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded phrase table is invalid: %v", err))
	}
	return d
}

// Load reads a phrase table from a YAML file. An empty path returns the
// embedded table.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase table: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML phrase table
func Parse(data []byte) (*Dictionary, error) {
	var entries map[string]map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse phrase table: %w", err)
	}
	return New(entries), nil
}

// Len returns the number of phrases known for target
func (d *Dictionary) Len(target string) int {
	return len(d.entries[baseLang(target)])
}

// Lookup translates text into target from the phrase table. The whole
// phrase is tried first, ignoring case and trailing punctuation; then a
// word-by-word substitution when every word is known. On a miss the
// original text is returned unchanged.
func (d *Dictionary) Lookup(text, target string) string {
	phrases := d.entries[baseLang(target)]
	if len(phrases) == 0 || strings.TrimSpace(text) == "" {
		return text
	}

	core := strings.TrimSpace(text)
	suffix := trailingPunct.FindString(core)
	core = strings.TrimSuffix(core, suffix)

	if translated, ok := phrases[normalize(core)]; ok {
		lead, trail := edges(text)
		return lead + matchCase(core, translated) + suffix + trail
	}

	if substituted, ok := substitute(text, phrases); ok {
		return substituted
	}
	return text
}

// substitute replaces every word of text with its dictionary entry. It
// reports false if any word is missing.
func substitute(text string, phrases map[string]string) (string, bool) {
	complete := true
	out := wordRe.ReplaceAllStringFunc(text, func(w string) string {
		translated, ok := phrases[normalize(w)]
		if !ok {
			complete = false
			return w
		}
		return matchCase(w, translated)
	})
	if !complete || !wordRe.MatchString(text) {
		return text, false
	}
	return out, true
}

func normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// matchCase capitalizes the first letter of value when original starts
// with an uppercase letter
func matchCase(original, value string) string {
	r, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(r) {
		return value
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + value[size:]
}

func edges(s string) (string, string) {
	trimmedLeft := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead := s[:len(s)-len(trimmedLeft)]
	trimmed := strings.TrimRightFunc(trimmedLeft, unicode.IsSpace)
	return lead, trimmedLeft[len(trimmed):]
}

func baseLang(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(c, "-_"); i > 0 {
		return c[:i]
	}
	return c
}
