package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no Gemini model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// Gemini translates with a Google Gemini model
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the provider for the Gemini API backend. baseURL is
// only set for tests.
func NewGemini(ctx context.Context, apiKey, model, baseURL string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingKey)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Name returns the provider name
func (g *Gemini) Name() string {
	return "gemini"
}

// Translate sends the instruction and text as a single prompt
func (g *Gemini) Translate(ctx context.Context, text, from, to string) (string, error) {
	prompt := translationPrompt(from, to) + "\n\n" + text

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", networkError(g.Name(), apiErr.Code, err)
		}
		return "", networkError(g.Name(), 0, err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", malformed(g.Name(), errors.New("no text in response"))
	}
	return translated, nil
}
