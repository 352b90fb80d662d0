package provider

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/snonux/totaltranslate/internal"
)

// DefaultTimeout bounds every provider HTTP request
const DefaultTimeout = 15 * time.Second

// maxBody caps how much of a response is read
const maxBody = 4 << 20

// NewHTTPClient returns a client with the given timeout, DefaultTimeout if zero
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// fetch performs req and returns the body of a 2xx response. Transport
// errors and other status codes are network failures.
func fetch(client *http.Client, req *http.Request, name string) ([]byte, error) {
	req.Header.Set("User-Agent", "totaltranslate/"+internal.Version)

	resp, err := client.Do(req)
	if err != nil {
		return nil, networkError(name, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, networkError(name, resp.StatusCode, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, networkError(name, resp.StatusCode, fmt.Errorf("unexpected HTTP status: %s", resp.Status))
	}
	return body, nil
}
