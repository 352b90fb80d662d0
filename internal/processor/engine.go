package processor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/totaltranslate/internal/cache"
	"codeberg.org/snonux/totaltranslate/internal/cli"
	"codeberg.org/snonux/totaltranslate/internal/dictionary"
	"codeberg.org/snonux/totaltranslate/internal/lang"
	"codeberg.org/snonux/totaltranslate/internal/provider"
	"codeberg.org/snonux/totaltranslate/internal/translation"
)

// BuildEngine creates a translation engine from the configuration
func BuildEngine(ctx context.Context, cfg *cli.Config, log logrus.FieldLogger) (*translation.Engine, error) {
	tables := lang.DefaultTables()
	if cfg.DetectTables != "" {
		loaded, err := lang.LoadTables(cfg.DetectTables)
		if err != nil {
			return nil, err
		}
		tables = loaded
	}

	detectorOpts := []lang.Option{
		lang.WithMinConfidence(cfg.DetectMinConfidence),
		lang.WithLogger(log),
	}
	if cfg.DetectURL != "" {
		client := provider.NewHTTPClient(cfg.ProviderTimeout)
		detectorOpts = append(detectorOpts, lang.WithRemote(lang.NewRemoteClient(cfg.DetectURL, cfg.LibreTranslateKey, client)))
	}

	dict := dictionary.Default()
	if cfg.DictionaryFile != "" {
		loaded, err := dictionary.Load(cfg.DictionaryFile)
		if err != nil {
			return nil, err
		}
		dict = loaded
	}

	providers, err := provider.NewChain(ctx, cfg.ProviderConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up providers: %w", err)
	}
	if len(providers) == 0 {
		log.Warn("No translation provider configured, only the dictionary will answer")
	}

	return translation.NewEngine(
		translation.WithProviders(providers...),
		translation.WithDetector(lang.NewDetector(tables, detectorOpts...)),
		translation.WithDictionary(dict),
		translation.WithCache(cache.NewFIFO(cfg.CacheCapacity)),
		translation.WithChunkSize(cfg.ChunkSize),
		translation.WithNormalizer(lang.NewNormalizer(tables)),
		translation.WithDefaultTarget(cfg.To),
		translation.WithLogger(log),
	), nil
}
