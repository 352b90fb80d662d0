package lang

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// Tables holds the data driving code canonicalization and local detection
type Tables struct {
	Aliases    map[string]string `yaml:"aliases"`
	Scripts    ScriptTable       `yaml:"scripts"`
	Diacritics []DiacriticClass  `yaml:"diacritics"`
	StopWords  StopWordTable     `yaml:"stopwords"`
}

// ScriptTable lists writing-system classes in check order
type ScriptTable struct {
	Threshold float64       `yaml:"threshold"`
	Classes   []ScriptClass `yaml:"classes"`
}

// ScriptClass maps one or more Unicode script names to a language
type ScriptClass struct {
	Lang    string   `yaml:"lang"`
	Scripts []string `yaml:"scripts"`
}

// DiacriticClass is a set of characters distinguishing a language
type DiacriticClass struct {
	Lang  string `yaml:"lang"`
	Chars string `yaml:"chars"`
}

// StopWordTable holds per-language frequent word lists in priority order
type StopWordTable struct {
	MaxWords  int            `yaml:"max_words"`
	Languages []StopWordList `yaml:"languages"`
}

// StopWordList is the stop-word list of one language
type StopWordList struct {
	Lang  string   `yaml:"lang"`
	Words []string `yaml:"words"`
}

// DefaultTables returns the tables compiled into the binary
func DefaultTables() *Tables {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded language tables are invalid: %v", err))
	}
	return t
}

// LoadTables reads tables from a YAML file. An empty path returns the
// embedded defaults.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language tables: %w", err)
	}
	return ParseTables(data)
}

// ParseTables decodes and validates YAML table data
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse language tables: %w", err)
	}
	if t.Scripts.Threshold <= 0 {
		t.Scripts.Threshold = 0.3
	}
	if t.StopWords.MaxWords <= 0 {
		t.StopWords.MaxWords = 20
	}
	aliases := make(map[string]string, len(t.Aliases))
	for k, v := range t.Aliases {
		aliases[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	t.Aliases = aliases
	for _, c := range t.Scripts.Classes {
		if c.Lang == "" || len(c.Scripts) == 0 {
			return nil, fmt.Errorf("script class without language or scripts")
		}
	}
	return &t, nil
}
