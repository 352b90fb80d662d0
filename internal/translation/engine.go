package translation

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/totaltranslate/internal"
	"codeberg.org/snonux/totaltranslate/internal/cache"
	"codeberg.org/snonux/totaltranslate/internal/dictionary"
	"codeberg.org/snonux/totaltranslate/internal/format"
	"codeberg.org/snonux/totaltranslate/internal/lang"
	"codeberg.org/snonux/totaltranslate/internal/provider"
	"codeberg.org/snonux/totaltranslate/internal/segment"
	"codeberg.org/snonux/totaltranslate/internal/validate"
)

// DefaultTarget replaces a target language of "auto"
const DefaultTarget = "en"

// Detector identifies the language of a text
type Detector interface {
	Detect(ctx context.Context, text string) string
}

// Cache stores finished translations by key
type Cache interface {
	GetOrCompute(ctx context.Context, key string, compute func(context.Context) (string, error)) (string, error)
}

// Engine translates texts through an ordered provider chain. It is safe for
// concurrent use.
type Engine struct {
	providers     []provider.Provider
	detector      Detector
	validator     *validate.Validator
	dictionary    *dictionary.Dictionary
	cache         Cache
	segmenter     *segment.Segmenter
	normalizer    *lang.Normalizer
	defaultTarget string
	log           logrus.FieldLogger
	stats         *stats
}

// Option configures an Engine
type Option func(*Engine)

// WithProviders sets the provider chain in priority order
func WithProviders(providers ...provider.Provider) Option {
	return func(e *Engine) { e.providers = providers }
}

// WithDetector sets the language detector used for "auto" sources
func WithDetector(d Detector) Option {
	return func(e *Engine) { e.detector = d }
}

// WithValidator replaces the default validator
func WithValidator(v *validate.Validator) Option {
	return func(e *Engine) { e.validator = v }
}

// WithDictionary replaces the embedded phrase dictionary
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(e *Engine) { e.dictionary = d }
}

// WithCache injects the result cache, which may be shared between engines
func WithCache(c Cache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithChunkSize sets the segmenter budget in characters
func WithChunkSize(n int) Option {
	return func(e *Engine) { e.segmenter = segment.New(n) }
}

// WithNormalizer sets the language code normalizer
func WithNormalizer(n *lang.Normalizer) Option {
	return func(e *Engine) { e.normalizer = n }
}

// WithDefaultTarget sets the language used when the target is "auto"
func WithDefaultTarget(code string) Option {
	return func(e *Engine) { e.defaultTarget = code }
}

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates an engine. Without WithProviders every chunk goes
// straight to the dictionary.
func NewEngine(opts ...Option) *Engine {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	tables := lang.DefaultTables()
	e := &Engine{
		detector:      lang.NewDetector(tables),
		validator:     validate.New(),
		dictionary:    dictionary.Default(),
		cache:         cache.NewFIFO(cache.DefaultCapacity),
		segmenter:     segment.New(segment.DefaultMaxChunkSize),
		normalizer:    lang.NewNormalizer(tables),
		defaultTarget: DefaultTarget,
		log:           silent,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.defaultTarget = e.normalizer.Normalize(e.defaultTarget)
	if e.defaultTarget == "" || e.defaultTarget == lang.Auto {
		e.defaultTarget = DefaultTarget
	}
	e.stats = newStats(provider.Names(e.providers))
	return e
}

// Providers returns the provider names in chain order
func (e *Engine) Providers() []string {
	return provider.Names(e.providers)
}

// DetectLanguage returns the canonical code of the language of text
func (e *Engine) DetectLanguage(ctx context.Context, text string) string {
	return e.normalizer.Normalize(e.detector.Detect(ctx, text))
}

// TranslateText translates text from one language to another. from may be
// "auto"; a target of "auto" means the default target. Whitespace-only
// input and same-language requests return the input unchanged. Leading and
// trailing whitespace of text is kept.
func (e *Engine) TranslateText(ctx context.Context, text, from, to string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	from = e.normalizer.Normalize(from)
	if from == "" {
		from = lang.Auto
	}
	to = e.normalizer.Normalize(to)
	if to == "" || to == lang.Auto {
		to = e.defaultTarget
	}
	if from != lang.Auto && from == to {
		return text
	}

	e.stats.requests.Add(1)
	log := e.log.WithFields(logrus.Fields{
		"request_id": internal.NewRequestID(),
		"from":       from,
		"to":         to,
	})

	lead, core, trail := format.SplitEdges(text)
	result, err := e.cache.GetOrCompute(ctx, cache.Key(core, from, to), func(ctx context.Context) (string, error) {
		e.stats.computed.Add(1)
		result := e.translate(ctx, log, core, from, to)
		if err := ctx.Err(); err != nil {
			// Providers were cut short, so the fallback result must not be cached
			return "", err
		}
		return result, nil
	})
	if err != nil {
		log.WithError(err).Warn("Translation aborted, returning original text")
		return text
	}
	return format.Restore(lead, result, trail)
}

func (e *Engine) translate(ctx context.Context, log logrus.FieldLogger, text, from, to string) string {
	if from == lang.Auto {
		from = e.DetectLanguage(ctx, text)
		log = log.WithField("detected", from)
		log.Debug("Detected source language")
		if from == to {
			return text
		}
	}

	chunks := e.segmenter.Segment(text)
	log.WithField("chunks", len(chunks)).Debug("Translating chunks")

	for i := range chunks {
		if chunks[i].Blank() {
			continue
		}
		chunks[i].Text = e.translateChunk(ctx, log, chunks[i].Text, from, to)
	}

	return format.Postprocess(format.Join(chunks))
}

// TranslateChunk runs one chunk through the provider chain. The first
// candidate accepted by the validator wins. Failed, malformed and rejected
// answers move on to the next provider, and when every provider is
// exhausted the dictionary answers. It never fails.
func (e *Engine) TranslateChunk(ctx context.Context, text, from, to string) string {
	return e.translateChunk(ctx, e.log, text, from, to)
}

func (e *Engine) translateChunk(ctx context.Context, log logrus.FieldLogger, text, from, to string) string {
	for i, p := range e.providers {
		counters := e.stats.providers[i]
		counters.attempts.Add(1)
		plog := log.WithField("provider", p.Name())

		candidate, err := p.Translate(ctx, text, from, to)
		if err != nil {
			counters.failures.Add(1)
			plog.WithError(err).Debug("Provider failed")
			continue
		}

		if err := e.validator.Validate(text, candidate, to); err != nil {
			counters.rejections.Add(1)
			plog.WithError(err).Debug("Provider answer rejected")
			continue
		}

		counters.successes.Add(1)
		return candidate
	}

	e.stats.dictionary.Add(1)
	log.WithField("text", internal.Truncate(text, 40)).Info("Providers exhausted, using dictionary fallback")
	return e.dictionary.Lookup(text, to)
}
