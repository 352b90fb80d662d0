package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/snonux/totaltranslate/internal/lang"
)

// DefaultLibreTranslateURL is the open source translation service
const DefaultLibreTranslateURL = "https://libretranslate.de/translate"

// LibreTranslate posts JSON to a LibreTranslate instance
type LibreTranslate struct {
	url    string
	apiKey string
	client *http.Client
}

// NewLibreTranslate creates the provider. The API key is only needed by
// instances that require one.
func NewLibreTranslate(endpoint, apiKey string, client *http.Client) *LibreTranslate {
	if endpoint == "" {
		endpoint = DefaultLibreTranslateURL
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &LibreTranslate{url: endpoint, apiKey: apiKey, client: client}
}

// Name returns the provider name
func (l *LibreTranslate) Name() string {
	return "libretranslate"
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Translate posts the chunk as plain text. LibreTranslate only knows base
// language codes so regions are dropped.
func (l *LibreTranslate) Translate(ctx context.Context, text, from, to string) (string, error) {
	payload, err := json.Marshal(libreRequest{
		Q:      text,
		Source: lang.Base(from),
		Target: lang.Base(to),
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", networkError(l.Name(), 0, fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(payload))
	if err != nil {
		return "", networkError(l.Name(), 0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := fetch(l.client, req, l.Name())
	if err != nil {
		return "", err
	}

	var resp libreResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", malformed(l.Name(), fmt.Errorf("failed to decode response: %w", err))
	}
	if resp.Error != "" {
		return "", malformed(l.Name(), errors.New(resp.Error))
	}
	if strings.TrimSpace(resp.TranslatedText) == "" {
		return "", malformed(l.Name(), errors.New("empty translatedText"))
	}
	return resp.TranslatedText, nil
}
