package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/totaltranslate/internal/cache"
	"codeberg.org/snonux/totaltranslate/internal/lang"
	"codeberg.org/snonux/totaltranslate/internal/ocr"
	"codeberg.org/snonux/totaltranslate/internal/provider"
	"codeberg.org/snonux/totaltranslate/internal/segment"
)

// Config is the resolved application configuration
type Config struct {
	From      string
	To        string
	Providers []string
	ChunkSize int

	CacheCapacity int

	DetectURL           string // Empty disables remote detection
	DetectMinConfidence float64
	DetectTables        string // Optional YAML file replacing the embedded tables

	GoogleURL         string
	MyMemoryURL       string
	MyMemoryEmail     string
	LibreTranslateURL string
	LibreTranslateKey string
	ProviderTimeout   time.Duration

	BreakerFailures uint32
	BreakerCooldown time.Duration

	DictionaryFile string
	OCRCleanup     bool
	HistoryPath    string

	OpenAIKey   string
	OpenAIModel string
	OCRModel    string
	GeminiKey   string
	GeminiModel string

	LogLevel  string
	LogFormat string
	Verbose   bool
}

// DefaultHistoryPath is where translations are recorded
func DefaultHistoryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "totaltranslate", "history.db")
}

// SetDefaults registers the default of every configuration key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("translate.from", lang.Auto)
	v.SetDefault("translate.to", "en")
	v.SetDefault("translate.providers", provider.DefaultOrder)
	v.SetDefault("translate.chunk_size", segment.DefaultMaxChunkSize)
	v.SetDefault("cache.capacity", cache.DefaultCapacity)
	v.SetDefault("detect.url", lang.DefaultDetectURL)
	v.SetDefault("detect.min_confidence", lang.DefaultMinConfidence)
	v.SetDefault("detect.tables", "")
	v.SetDefault("provider.google_url", provider.DefaultGoogleURL)
	v.SetDefault("provider.mymemory_url", provider.DefaultMyMemoryURL)
	v.SetDefault("provider.mymemory_email", "")
	v.SetDefault("provider.libretranslate_url", provider.DefaultLibreTranslateURL)
	v.SetDefault("provider.libretranslate_key", "")
	v.SetDefault("provider.timeout", provider.DefaultTimeout)
	v.SetDefault("breaker.failures", provider.DefaultBreakerFailures)
	v.SetDefault("breaker.cooldown", provider.DefaultBreakerCooldown)
	v.SetDefault("dictionary.file", "")
	v.SetDefault("format.ocr_cleanup", false)
	v.SetDefault("history.path", DefaultHistoryPath())
	v.SetDefault("openai.model", provider.DefaultOpenAIModel)
	v.SetDefault("openai.vision_model", ocr.DefaultModel)
	v.SetDefault("gemini.model", provider.DefaultGeminiModel)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.verbose", false)
}

// LoadConfig resolves the configuration from the global viper instance
func LoadConfig() *Config {
	cfg := LoadConfigFrom(viper.GetViper())
	cfg.OpenAIKey = GetOpenAIKey()
	cfg.GeminiKey = GetGeminiKey()
	return cfg
}

// LoadConfigFrom resolves the configuration from v
func LoadConfigFrom(v *viper.Viper) *Config {
	return &Config{
		From:                v.GetString("translate.from"),
		To:                  v.GetString("translate.to"),
		Providers:           splitList(v.GetStringSlice("translate.providers")),
		ChunkSize:           v.GetInt("translate.chunk_size"),
		CacheCapacity:       v.GetInt("cache.capacity"),
		DetectURL:           v.GetString("detect.url"),
		DetectMinConfidence: v.GetFloat64("detect.min_confidence"),
		DetectTables:        v.GetString("detect.tables"),
		GoogleURL:           v.GetString("provider.google_url"),
		MyMemoryURL:         v.GetString("provider.mymemory_url"),
		MyMemoryEmail:       v.GetString("provider.mymemory_email"),
		LibreTranslateURL:   v.GetString("provider.libretranslate_url"),
		LibreTranslateKey:   v.GetString("provider.libretranslate_key"),
		ProviderTimeout:     v.GetDuration("provider.timeout"),
		BreakerFailures:     v.GetUint32("breaker.failures"),
		BreakerCooldown:     v.GetDuration("breaker.cooldown"),
		DictionaryFile:      v.GetString("dictionary.file"),
		OCRCleanup:          v.GetBool("format.ocr_cleanup"),
		HistoryPath:         v.GetString("history.path"),
		OpenAIKey:           v.GetString("openai.key"),
		OpenAIModel:         v.GetString("openai.model"),
		OCRModel:            v.GetString("openai.vision_model"),
		GeminiKey:           v.GetString("gemini.key"),
		GeminiModel:         v.GetString("gemini.model"),
		LogLevel:            v.GetString("log.level"),
		LogFormat:           v.GetString("log.format"),
		Verbose:             v.GetBool("log.verbose"),
	}
}

// ProviderConfig returns the provider settings of c
func (c *Config) ProviderConfig() *provider.Config {
	return &provider.Config{
		Order:             c.Providers,
		GoogleURL:         c.GoogleURL,
		MyMemoryURL:       c.MyMemoryURL,
		MyMemoryEmail:     c.MyMemoryEmail,
		LibreTranslateURL: c.LibreTranslateURL,
		LibreTranslateKey: c.LibreTranslateKey,
		Timeout:           c.ProviderTimeout,
		OpenAIKey:         c.OpenAIKey,
		OpenAIModel:       c.OpenAIModel,
		GeminiKey:         c.GeminiKey,
		GeminiModel:       c.GeminiModel,
		BreakerFailures:   c.BreakerFailures,
		BreakerCooldown:   c.BreakerCooldown,
	}
}

// splitList accepts both lists and comma separated values, as environment
// variables can only carry the latter
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.ToLower(part))
			}
		}
	}
	return out
}
