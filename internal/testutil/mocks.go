package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrMockFailure is returned by mocks scripted to fail
var ErrMockFailure = errors.New("mock failure")

// MockProvider is a scripted translation provider
type MockProvider struct {
	ProviderName string
	Translations map[string]string // Answers by input text
	Errors       map[string]error  // Failures by input text
	Default      string            // Answer for unknown texts, "" echoes a mock translation
	FailAll      bool

	mu    sync.Mutex
	calls []string
}

// NewMockProvider creates a provider answering from translations
func NewMockProvider(name string, translations map[string]string) *MockProvider {
	return &MockProvider{ProviderName: name, Translations: translations}
}

// NewFailingProvider creates a provider whose every call fails
func NewFailingProvider(name string) *MockProvider {
	return &MockProvider{ProviderName: name, FailAll: true}
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return m.ProviderName
}

// Translate records the call and returns the scripted answer
func (m *MockProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("%s (%s->%s)", text, from, to))
	m.mu.Unlock()

	if m.FailAll {
		return "", fmt.Errorf("%s: %w", m.ProviderName, ErrMockFailure)
	}
	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	if m.Default != "" {
		return m.Default, nil
	}
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Calls returns the recorded calls as "text (from->to)"
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns the number of Translate calls
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockDetector returns a fixed language and counts calls
type MockDetector struct {
	Language string

	mu    sync.Mutex
	calls int
}

// Detect returns Language
func (m *MockDetector) Detect(ctx context.Context, text string) string {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.Language
}

// CallCount returns the number of Detect calls
func (m *MockDetector) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockExtractor is a scripted OCR extractor
type MockExtractor struct {
	Text string
	Err  error

	Images [][]byte
}

// ExtractText returns Text or Err
func (m *MockExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	m.Images = append(m.Images, image)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
