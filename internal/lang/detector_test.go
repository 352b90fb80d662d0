package lang

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

// mockRemote implements Remote for testing
type mockRemote struct {
	detections []Detection
	err        error
	calls      int
	lastText   string
}

func (m *mockRemote) DetectRemote(ctx context.Context, text string) ([]Detection, error) {
	m.calls++
	m.lastText = text
	return m.detections, m.err
}

func TestDetector_Remote(t *testing.T) {
	tests := []struct {
		name       string
		detections []Detection
		err        error
		text       string
		want       string
	}{
		{
			name:       "confident fraction",
			detections: []Detection{{Language: "fr", Confidence: 0.92}},
			text:       "the cat is on the mat",
			want:       "fr",
		},
		{
			name:       "confident percentage",
			detections: []Detection{{Language: "German", Confidence: 87}},
			text:       "the cat is on the mat",
			want:       "de",
		},
		{
			name:       "best of several",
			detections: []Detection{{Language: "es", Confidence: 60}, {Language: "it", Confidence: 80}},
			text:       "the cat is on the mat",
			want:       "it",
		},
		{
			name:       "low confidence falls back",
			detections: []Detection{{Language: "fr", Confidence: 0.2}},
			text:       "the cat is on the mat",
			want:       "en",
		},
		{
			name:       "auto is not usable",
			detections: []Detection{{Language: "auto", Confidence: 1}},
			text:       "Привет мир",
			want:       "ru",
		},
		{
			name: "error falls back",
			err:  errors.New("connection refused"),
			text: "der Hund und die Katze",
			want: "de",
		},
		{
			name: "empty response falls back",
			text: "こんにちは",
			want: "ja",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &mockRemote{detections: tt.detections, err: tt.err}
			d := NewDetector(nil, WithRemote(remote))

			if got := d.Detect(context.Background(), tt.text); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
			if remote.calls != 1 {
				t.Errorf("Expected 1 remote call, got %d", remote.calls)
			}
		})
	}
}

func TestDetector_SampleSize(t *testing.T) {
	remote := &mockRemote{detections: []Detection{{Language: "en", Confidence: 1}}}
	d := NewDetector(nil, WithRemote(remote))

	d.Detect(context.Background(), "  "+strings.Repeat("word ", 100))

	if n := utf8.RuneCountInString(remote.lastText); n != DefaultSampleSize {
		t.Errorf("Expected %d rune sample, got %d", DefaultSampleSize, n)
	}
	if strings.HasPrefix(remote.lastText, " ") {
		t.Error("Expected sample to be taken from trimmed text")
	}
}

func TestDetector_EmptyText(t *testing.T) {
	remote := &mockRemote{}
	d := NewDetector(nil, WithRemote(remote))

	if got := d.Detect(context.Background(), "   "); got != DefaultLanguage {
		t.Errorf("Expected %q for empty text, got %q", DefaultLanguage, got)
	}
	if remote.calls != 0 {
		t.Error("Expected no remote call for empty text")
	}
}

func TestDetector_LocalDefault(t *testing.T) {
	d := NewDetector(nil)
	if got := d.Detect(context.Background(), "xyzzy plugh 42"); got != DefaultLanguage {
		t.Errorf("Expected default language, got %q", got)
	}
}

func TestDetector_MinConfidence(t *testing.T) {
	remote := &mockRemote{detections: []Detection{{Language: "fr", Confidence: 0.7}}}
	d := NewDetector(nil, WithRemote(remote), WithMinConfidence(0.8))

	if got := d.Detect(context.Background(), "the cat is on the mat"); got != "en" {
		t.Errorf("Expected local fallback 'en', got %q", got)
	}
}

func TestRemoteClient(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[{"language":"ru","confidence":95.0}]`))
	}))
	defer server.Close()

	client := NewRemoteClient(server.URL, "", nil)
	detections, err := client.DetectRemote(context.Background(), "Привет")
	if err != nil {
		t.Fatalf("DetectRemote() unexpected error: %v", err)
	}
	if gotBody["q"] != "Привет" {
		t.Errorf("Expected q=Привет, got %q", gotBody["q"])
	}
	if _, ok := gotBody["api_key"]; ok {
		t.Error("Expected api_key to be omitted when empty")
	}
	if len(detections) != 1 || detections[0].Language != "ru" || detections[0].Confidence != 95 {
		t.Errorf("Unexpected detections: %+v", detections)
	}
}

func TestRemoteClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, "boom", "returned 500"},
		{"malformed", http.StatusOK, `{"not":"an array"}`, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewRemoteClient(server.URL, "", nil).DetectRemote(context.Background(), "x")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
