package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultMyMemoryURL is the community translation memory endpoint
const DefaultMyMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemory queries the community translation memory
type MyMemory struct {
	url    string
	email  string
	client *http.Client
}

// NewMyMemory creates the provider. The contact email raises the daily
// quota and is optional.
func NewMyMemory(endpoint, email string, client *http.Client) *MyMemory {
	if endpoint == "" {
		endpoint = DefaultMyMemoryURL
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &MyMemory{url: endpoint, email: email, client: client}
}

// Name returns the provider name
func (m *MyMemory) Name() string {
	return "mymemory"
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	// The endpoint sends the status as a number or as a quoted string
	ResponseStatus json.RawMessage `json:"responseStatus"`
	ResponseDetails string         `json:"responseDetails"`
}

// Translate sends a GET request with a from|to language pair
func (m *MyMemory) Translate(ctx context.Context, text, from, to string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", from+"|"+to)
	if m.email != "" {
		params.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url+"?"+params.Encode(), nil)
	if err != nil {
		return "", networkError(m.Name(), 0, fmt.Errorf("failed to create request: %w", err))
	}

	body, err := fetch(m.client, req, m.Name())
	if err != nil {
		return "", err
	}

	var resp myMemoryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", malformed(m.Name(), fmt.Errorf("failed to decode response: %w", err))
	}

	status, err := strconv.Atoi(strings.Trim(string(resp.ResponseStatus), `"`))
	if err != nil {
		return "", malformed(m.Name(), fmt.Errorf("invalid responseStatus %s", resp.ResponseStatus))
	}
	if status != http.StatusOK {
		return "", networkError(m.Name(), status, fmt.Errorf("request refused: %s", resp.ResponseDetails))
	}

	if strings.TrimSpace(resp.ResponseData.TranslatedText) == "" {
		return "", malformed(m.Name(), errors.New("empty translatedText"))
	}
	return resp.ResponseData.TranslatedText, nil
}
