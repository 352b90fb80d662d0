package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookup(t *testing.T) {
	d := Default()

	tests := []struct {
		name   string
		text   string
		target string
		want   string
	}{
		{"exact phrase capitalized", "Hello world", "ru", "Привет мир"},
		{"lowercase phrase", "hello world", "ru", "привет мир"},
		{"collapsed whitespace", "hello   world", "ru", "привет мир"},
		{"trailing punctuation kept", "Thank you!", "ru", "Спасибо!"},
		{"surrounding whitespace kept", "  Hello  ", "ru", "  Привет  "},
		{"word substitution", "Hello.\n\nWorld.", "ru", "Привет.\n\nМир."},
		{"partial miss returns original", "Hello strange world", "ru", "Hello strange world"},
		{"unknown target", "Hello", "xx", "Hello"},
		{"regional target uses base", "Hello world", "pt-BR", "Olá mundo"},
		{"reverse direction", "Спасибо", "en", "Thank you"},
		{"empty", "", "ru", ""},
		{"punctuation only", "?!", "ru", "?!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Lookup(tt.text, tt.target); got != tt.want {
				t.Errorf("Lookup(%q, %q) = %q, want %q", tt.text, tt.target, got, tt.want)
			}
		})
	}
}

func TestNew_NormalizesKeys(t *testing.T) {
	d := New(map[string]map[string]string{
		"DE": {"  Good   Night ": "gute Nacht"},
	})

	if got := d.Lookup("good night", "de"); got != "gute Nacht" {
		t.Errorf("Expected normalized key lookup, got %q", got)
	}
	if d.Len("de") != 1 {
		t.Errorf("Expected 1 phrase, got %d", d.Len("de"))
	}
}

func TestLoad(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if d.Len("ru") == 0 {
		t.Error("Expected embedded Russian phrases")
	}

	path := filepath.Join(t.TempDir(), "phrases.yaml")
	if err := os.WriteFile(path, []byte("bg:\n  apple: ябълка\n"), 0644); err != nil {
		t.Fatalf("Failed to write phrases: %v", err)
	}
	d, err = Load(path)
	if err != nil {
		t.Fatalf("Load(path) failed: %v", err)
	}
	if got := d.Lookup("Apple", "bg"); got != "Ябълка" {
		t.Errorf("Expected 'Ябълка', got %q", got)
	}

	if _, err := Load("/nonexistent/phrases.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := Parse([]byte("- not\n- a map\n")); err == nil {
		t.Error("Expected error for malformed table")
	}
}
