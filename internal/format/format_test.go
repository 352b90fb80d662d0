package format

import (
	"testing"

	"codeberg.org/snonux/totaltranslate/internal/segment"
)

func TestJoin(t *testing.T) {
	chunks := []segment.Chunk{
		{Text: "Первый.", Delimiter: " "},
		{Text: "Второй.", Delimiter: "\n\n\n\n"},
		{Text: "  ", Delimiter: ""},
		{Text: "Третий.", Delimiter: ""},
	}

	want := "Первый. Второй.\n\n  Третий."
	if got := Join(chunks); got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestSplitEdgesRestore(t *testing.T) {
	lead, core, trail := SplitEdges("  Hello.\n\nWorld.  ")
	if lead != "  " || core != "Hello.\n\nWorld." || trail != "  " {
		t.Errorf("SplitEdges() = %q, %q, %q", lead, core, trail)
	}

	if got := Restore(lead, " Привет.\n\nМир. ", trail); got != "  Привет.\n\nМир.  " {
		t.Errorf("Restore() = %q", got)
	}

	lead, core, trail = SplitEdges("   ")
	if lead != "   " || core != "" || trail != "" {
		t.Errorf("SplitEdges(blank) = %q, %q, %q", lead, core, trail)
	}
}

func TestDedupeSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adjacent duplicate", "Hello there. Hello there. Bye.", "Hello there. Bye."},
		{"case and spacing insensitive", "Good day. GOOD   day. Fine.", "Good day. Fine."},
		{"across lines", "One.\nTwo.\nOne.", "One.\nTwo.\n"},
		{"no duplicates", "A cat. A dog.", "A cat. A dog."},
		{"keeps blank lines", "First.\n\nSecond.", "First.\n\nSecond."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DedupeSentences(tt.in); got != tt.want {
				t.Errorf("DedupeSentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCapitalizeSentences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello. world! again? yes", "Hello. World! Again? Yes"},
		{"  привет. мир.", "  Привет. Мир."},
		{"first.\n\nsecond.", "First.\n\nSecond."},
		{"It costs 3.5 dollars.", "It costs 3.5 dollars."},
		{"I like fruit, e.g. apples", "I like fruit, e.g. apples"},
		{"ask Mr. smith. he knows", "Ask Mr. smith. He knows"},
	}

	for _, tt := range tests {
		if got := CapitalizeSentences(tt.in); got != tt.want {
			t.Errorf("CapitalizeSentences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPunctuationSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello , world !", "Hello, world!"},
		{"One.   Two.", "One. Two."},
		{"Done.Next one", "Done. Next one"},
		{"The U.S. Army", "The U.S. Army"},
		{"Line.\nNext", "Line.\nNext"},
	}

	for _, tt := range tests {
		if got := PunctuationSpacing(tt.in); got != tt.want {
			t.Errorf("PunctuationSpacing(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("a  \t b\n\n\n\nc"); got != "a b\n\nc" {
		t.Errorf("CollapseWhitespace() = %q", got)
	}
}

func TestPostprocess(t *testing.T) {
	in := "  Привет , мир .  Привет , мир . Как дела ?\n\n\n\nхорошо  "
	want := "Привет, мир. Как дела?\n\nХорошо"

	if got := Postprocess(in); got != want {
		t.Errorf("Postprocess() = %q, want %q", got, want)
	}
}

func TestApplyOrder(t *testing.T) {
	rules := []Rule{
		{Name: "a", Apply: func(s string) string { return s + "a" }},
		{Name: "b", Apply: func(s string) string { return s + "b" }},
	}
	if got := Apply(rules, ""); got != "ab" {
		t.Errorf("Apply() = %q, want 'ab'", got)
	}
}

func TestCleanOCR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the cornpany barn", "the company barn"},
		{"0 say can you see", "O say can you see"},
		{"1 think so", "I think so"},
		{"| think so", "I think so"},
		{"room 101", "room 101"},
	}

	for _, tt := range tests {
		if got := CleanOCR(tt.in); got != tt.want {
			t.Errorf("CleanOCR(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
