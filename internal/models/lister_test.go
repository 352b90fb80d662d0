package models

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestCategorize(t *testing.T) {
	ids := []string{"tts-1", "gpt-4o-mini", "dall-e-3", "gpt-3.5-turbo", "whisper-1",
		"text-embedding-3-small", "gpt-4o", "o3-mini", "gpt-4o-mini-tts", "babbage-002"}

	c := Categorize(ids)

	if want := []string{"gpt-3.5-turbo", "gpt-4o", "gpt-4o-mini", "o3-mini"}; !reflect.DeepEqual(c.Chat, want) {
		t.Errorf("Chat = %v, want %v", c.Chat, want)
	}
	if want := []string{"gpt-4o", "gpt-4o-mini"}; !reflect.DeepEqual(c.Vision, want) {
		t.Errorf("Vision = %v, want %v", c.Vision, want)
	}
	if c.Other != 6 {
		t.Errorf("Other = %d, want 6", c.Other)
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	err := NewLister("", "").ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should mention OPENAI_API_KEY: %v", err)
	}
}

func TestListAvailableModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"object":"list","data":[{"id":"gpt-4o-mini","object":"model"},{"id":"tts-1","object":"model"}]}`)
	}))
	defer server.Close()

	var out bytes.Buffer
	if err := NewLister("test-key", server.URL+"/v1").ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Available OpenAI Models:", "  gpt-4o-mini\n", "(1 audio, image and embedding models not shown)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "tts-1\n") {
		t.Errorf("output lists a TTS model:\n%s", got)
	}
}

func TestListAvailableModels_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	err := NewLister("bad", server.URL+"/v1").ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "failed to list models") {
		t.Errorf("error = %v", err)
	}
}
