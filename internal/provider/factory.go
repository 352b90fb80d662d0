package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultOrder is the provider priority used when none is configured
var DefaultOrder = []string{"google", "mymemory", "libretranslate"}

// Config holds the settings of every provider
type Config struct {
	Order []string // Provider names in priority order

	GoogleURL         string
	MyMemoryURL       string
	MyMemoryEmail     string
	LibreTranslateURL string
	LibreTranslateKey string
	Timeout           time.Duration

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	BreakerFailures uint32
	BreakerCooldown time.Duration
	DisableBreaker  bool

	HTTPClient *http.Client // Overrides Timeout when set
}

// DefaultConfig returns the configuration of the three free endpoints
func DefaultConfig() *Config {
	return &Config{
		Order:             append([]string(nil), DefaultOrder...),
		GoogleURL:         DefaultGoogleURL,
		MyMemoryURL:       DefaultMyMemoryURL,
		LibreTranslateURL: DefaultLibreTranslateURL,
		Timeout:           DefaultTimeout,
		OpenAIModel:       DefaultOpenAIModel,
		GeminiModel:       DefaultGeminiModel,
		BreakerFailures:   DefaultBreakerFailures,
		BreakerCooldown:   DefaultBreakerCooldown,
	}
}

// New creates the named provider without a breaker
func New(ctx context.Context, name string, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	client := config.HTTPClient
	if client == nil {
		client = NewHTTPClient(config.Timeout)
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "google":
		return NewGoogle(config.GoogleURL, client), nil
	case "mymemory":
		return NewMyMemory(config.MyMemoryURL, config.MyMemoryEmail, client), nil
	case "libretranslate":
		return NewLibreTranslate(config.LibreTranslateURL, config.LibreTranslateKey, client), nil
	case "openai":
		return NewOpenAI(config.OpenAIKey, config.OpenAIModel, config.OpenAIBaseURL)
	case "gemini":
		return NewGemini(ctx, config.GeminiKey, config.GeminiModel, config.GeminiBaseURL)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", name)
	}
}

// NewChain creates the providers of config.Order, each behind its own
// breaker unless disabled. Unknown names are an error; providers missing
// their API key are skipped with a warning.
func NewChain(ctx context.Context, config *Config, log logrus.FieldLogger) ([]Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	order := config.Order
	if len(order) == 0 {
		order = DefaultOrder
	}

	seen := make(map[string]bool)
	var chain []Provider
	for _, name := range order {
		p, err := New(ctx, name, config)
		if errors.Is(err, ErrMissingKey) {
			if log != nil {
				log.WithField("provider", name).Warn("Skipping provider without API key")
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		if seen[p.Name()] {
			continue
		}
		seen[p.Name()] = true

		if !config.DisableBreaker {
			p = NewBreaker(p, config.BreakerFailures, config.BreakerCooldown, log)
		}
		chain = append(chain, p)
	}
	return chain, nil
}

// Names returns the names of providers in order
func Names(providers []Provider) []string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	return names
}
