package lang

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScriptStrategy(t *testing.T) {
	s := NewScriptStrategy(DefaultTables().Scripts)

	tests := []struct {
		text string
		want string
	}{
		{"Привет, как дела?", "ru"},
		{"你好世界", "zh"},
		{"こんにちは世界", "ja"},
		{"안녕하세요", "ko"},
		{"مرحبا بالعالم", "ar"},
		{"Hello world", ""},
		{"Hello мир and more english words", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := s.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDiacriticStrategy(t *testing.T) {
	s := NewDiacriticStrategy(DefaultTables().Diacritics)

	tests := []struct {
		text string
		want string
	}{
		{"Schöne Grüße", "de"},
		{"Ça va très bien", "fr"},
		{"¿Dónde está?", "es"},
		{"Dzień dobry, jak się masz", "pl"},
		{"Işık ağır", "tr"},
		{"Plain ascii text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := s.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStopWordStrategy(t *testing.T) {
	s := NewStopWordStrategy(DefaultTables().StopWords)

	tests := []struct {
		text string
		want string
	}{
		{"the cat is on the mat", "en"},
		{"der Hund und die Katze", "de"},
		{"el perro y la casa", "es"},
		{"xyzzy plugh", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := s.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStopWordStrategyTieKeepsFirst(t *testing.T) {
	s := NewStopWordStrategy(StopWordTable{
		MaxWords: 20,
		Languages: []StopWordList{
			{Lang: "first", Words: []string{"shared"}},
			{Lang: "second", Words: []string{"shared"}},
		},
	})

	if got := s.Detect("shared word"); got != "first" {
		t.Errorf("Expected tie to favour 'first', got %q", got)
	}
}

func TestWords(t *testing.T) {
	got := Words("Hello, World! It's fine.")
	want := []string{"hello", "world", "it's", "fine"}

	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadTables(t *testing.T) {
	tbl, err := LoadTables("")
	if err != nil {
		t.Fatalf("LoadTables(\"\") failed: %v", err)
	}
	if len(tbl.StopWords.Languages) == 0 {
		t.Error("Expected embedded stop words")
	}

	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `scripts:
  classes:
    - lang: el
      scripts: [Greek]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write tables: %v", err)
	}

	tbl, err = LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables(path) failed: %v", err)
	}
	if tbl.Scripts.Threshold != 0.3 {
		t.Errorf("Expected default threshold 0.3, got %v", tbl.Scripts.Threshold)
	}

	d := NewDetector(tbl)
	if got := d.DetectLocal("Καλημέρα κόσμε"); got != "el" {
		t.Errorf("Expected custom Greek class to detect 'el', got %q", got)
	}
}

func TestLoadTables_Errors(t *testing.T) {
	if _, err := LoadTables("/nonexistent/tables.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := ParseTables([]byte("scripts:\n  classes:\n    - lang: xx\n")); err == nil {
		t.Error("Expected error for class without scripts")
	}
	if _, err := ParseTables([]byte("aliases: [not, a, map]")); err == nil {
		t.Error("Expected error for malformed aliases")
	}
}
