package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultDetectURL is a LibreTranslate-compatible detection endpoint
	DefaultDetectURL = "https://libretranslate.de/detect"
	detectTimeout    = 10 * time.Second
)

// Detection is one candidate returned by a remote detector. Confidence is
// reported either as a fraction or as a percentage depending on the server.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Remote asks a remote service which language a text is in
type Remote interface {
	DetectRemote(ctx context.Context, text string) ([]Detection, error)
}

// RemoteClient calls a LibreTranslate-style /detect endpoint
type RemoteClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewRemoteClient creates a detection client. A nil httpClient gets a
// client with a short timeout.
func NewRemoteClient(url, apiKey string, httpClient *http.Client) *RemoteClient {
	if url == "" {
		url = DefaultDetectURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: detectTimeout}
	}
	return &RemoteClient{url: url, apiKey: apiKey, httpClient: httpClient}
}

type detectRequest struct {
	Q      string `json:"q"`
	APIKey string `json:"api_key,omitempty"`
}

// DetectRemote posts {q} and decodes the candidate list
func (c *RemoteClient) DetectRemote(ctx context.Context, text string) ([]Detection, error) {
	body, err := json.Marshal(detectRequest{Q: text, APIKey: c.apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detect request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("detect endpoint returned %d: %s", resp.StatusCode, string(msg))
	}

	var detections []Detection
	if err := json.NewDecoder(resp.Body).Decode(&detections); err != nil {
		return nil, fmt.Errorf("failed to decode detect response: %w", err)
	}
	return detections, nil
}
