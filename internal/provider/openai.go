package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no chat model is configured
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI translates with a chat completion model
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates the provider. baseURL is only set for compatible
// gateways and tests.
func NewOpenAI(apiKey, model, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingKey)
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(config), model: model}, nil
}

// Name returns the provider name
func (o *OpenAI) Name() string {
	return "openai"
}

// Translate asks the model for the bare translation
func (o *OpenAI) Translate(ctx context.Context, text, from, to string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: translationPrompt(from, to),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.2,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", networkError(o.Name(), apiErr.HTTPStatusCode, err)
		}
		return "", networkError(o.Name(), 0, err)
	}

	if len(resp.Choices) == 0 {
		return "", malformed(o.Name(), errors.New("no choices returned"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// translationPrompt is shared by the LLM providers
func translationPrompt(from, to string) string {
	source := "the detected source language"
	if from != "" && from != "auto" {
		source = fmt.Sprintf("language code %q", from)
	}
	return fmt.Sprintf("Translate the user's text from %s to language code %q. "+
		"Keep line breaks and punctuation. Respond with only the translation, nothing else.", source, to)
}
