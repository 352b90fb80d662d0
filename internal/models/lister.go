package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. baseURL is only set for compatible
// gateways and tests.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// Categorized groups model IDs by what they can be used for
type Categorized struct {
	Chat   []string // Usable with the openai translation provider
	Vision []string // Usable for text extraction from images
	Other  int      // Audio, image, embedding and moderation models
}

// Categorize sorts model IDs into groups
func Categorize(ids []string) Categorized {
	var c Categorized
	for _, id := range ids {
		switch {
		case isSpecialPurpose(id):
			c.Other++
		case strings.HasPrefix(id, "gpt-4o") || strings.HasPrefix(id, "gpt-4.1") ||
			strings.Contains(id, "vision") || strings.HasPrefix(id, "o4"):
			c.Vision = append(c.Vision, id)
			c.Chat = append(c.Chat, id)
		case strings.Contains(id, "gpt") || strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3"):
			c.Chat = append(c.Chat, id)
		default:
			c.Other++
		}
	}
	sort.Strings(c.Chat)
	sort.Strings(c.Vision)
	return c
}

func isSpecialPurpose(id string) bool {
	for _, marker := range []string{"tts", "audio", "whisper", "dall-e", "embedding", "moderation", "realtime", "transcribe", "image"} {
		if strings.Contains(id, marker) {
			return true
		}
	}
	return false
}

// ListAvailableModels writes the chat and vision models available to the key
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .totaltranslate.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, len(models.Models))
	for i, m := range models.Models {
		ids[i] = m.ID
	}
	c := Categorize(ids)

	fmt.Fprintln(w, "Available OpenAI Models:")
	printGroup(w, "Translation (chat) models, use with --providers openai:", c.Chat)
	printGroup(w, "Vision models, use for --image text extraction:", c.Vision)
	if c.Other > 0 {
		fmt.Fprintf(w, "\n(%d audio, image and embedding models not shown)\n", c.Other)
	}
	return nil
}

func printGroup(w io.Writer, title string, ids []string) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(ids) == 0 {
		fmt.Fprintln(w, "  none found")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
