package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultGoogleURL is the public web translation endpoint
const DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"

// Google queries the public web translation endpoint
type Google struct {
	url    string
	client *http.Client
}

// NewGoogle creates the provider. An empty endpoint uses DefaultGoogleURL.
func NewGoogle(endpoint string, client *http.Client) *Google {
	if endpoint == "" {
		endpoint = DefaultGoogleURL
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &Google{url: endpoint, client: client}
}

// Name returns the provider name
func (g *Google) Name() string {
	return "google"
}

// Translate sends a GET request and concatenates the translated segments of
// the nested array response
func (g *Google) Translate(ctx context.Context, text, from, to string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", from)
	params.Set("tl", to)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url+"?"+params.Encode(), nil)
	if err != nil {
		return "", networkError(g.Name(), 0, fmt.Errorf("failed to create request: %w", err))
	}

	body, err := fetch(g.client, req, g.Name())
	if err != nil {
		return "", err
	}

	translated, err := parseGoogle(body)
	if err != nil {
		return "", malformed(g.Name(), err)
	}
	return translated, nil
}

// parseGoogle extracts response[0][i][0] for every i
func parseGoogle(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(top) == 0 {
		return "", errors.New("empty response array")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected segment list: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part *string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			return "", fmt.Errorf("unexpected segment: %w", err)
		}
		if part != nil {
			b.WriteString(*part)
		}
	}

	if b.Len() == 0 {
		return "", errors.New("no translated segments")
	}
	return b.String(), nil
}
