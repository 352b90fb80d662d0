package internal

import "testing"

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()

	if len(a) != 12 {
		t.Errorf("Expected 12 character id, got %q", a)
	}
	if a == b {
		t.Error("Expected distinct request ids")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 5, "hello..."},
		{"привет мир", 6, "привет..."},
		{"abc", 0, "abc"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
