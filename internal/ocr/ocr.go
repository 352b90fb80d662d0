// Package ocr extracts text from images so it can be translated like typed
// text.
package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrNoText is returned when the image contains no readable text
var ErrNoText = errors.New("no text found in image")

// DefaultModel is the vision capable chat model
const DefaultModel = openai.GPT4oMini

// noTextReply is what the model is told to answer for images without text
const noTextReply = "NO_TEXT"

// Extractor turns image bytes into text
type Extractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// OpenAIExtractor reads text with an OpenAI vision model
type OpenAIExtractor struct {
	client *openai.Client
	model  string
}

// NewOpenAIExtractor creates an extractor. baseURL is only set for
// compatible gateways and tests.
func NewOpenAIExtractor(apiKey, model, baseURL string) (*OpenAIExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required for text extraction")
	}
	if model == "" {
		model = DefaultModel
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIExtractor{client: openai.NewClientWithConfig(config), model: model}, nil
}

// ExtractText sends the image as a data URL and returns the transcribed text
func (o *OpenAIExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrNoText
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Transcribe all text in this image exactly as written, keeping line breaks. " +
							"Respond with only the text. If there is no text, respond with " + noTextReply + ".",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    DataURL(image),
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
		Temperature: 0,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI vision request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no text extraction returned")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" || strings.EqualFold(text, noTextReply) {
		return "", ErrNoText
	}
	return text, nil
}

// DataURL encodes image as a base64 data URL with its sniffed MIME type
func DataURL(image []byte) string {
	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)
}
