package lang

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultSampleSize is how many runes of the text are sent for remote detection
	DefaultSampleSize = 150
	// DefaultMinConfidence is the minimum remote confidence, as a fraction
	DefaultMinConfidence = 0.5
	// DefaultLanguage is returned when nothing else matches
	DefaultLanguage = "en"
)

// Detector guesses the language of a text, remotely first and then locally
type Detector struct {
	remote        Remote
	strategies    []Strategy
	normalizer    *Normalizer
	sampleSize    int
	minConfidence float64
	log           logrus.FieldLogger
}

// Option configures a Detector
type Option func(*Detector)

// WithRemote sets the remote detection service. Without one only the local
// pipeline runs.
func WithRemote(r Remote) Option {
	return func(d *Detector) { d.remote = r }
}

// WithMinConfidence sets the minimum accepted remote confidence (0..1)
func WithMinConfidence(c float64) Option {
	return func(d *Detector) {
		if c > 0 {
			d.minConfidence = c
		}
	}
}

// WithLogger sets the logger used for detection diagnostics
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Detector) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDetector builds a detector using tables for the local pipeline
func NewDetector(t *Tables, opts ...Option) *Detector {
	if t == nil {
		t = DefaultTables()
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	d := &Detector{
		strategies:    LocalPipeline(t),
		normalizer:    NewNormalizer(t),
		sampleSize:    DefaultSampleSize,
		minConfidence: DefaultMinConfidence,
		log:           silent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the canonical code of the language of text. It never
// fails: remote errors fall back to the local heuristics, and those fall
// back to DefaultLanguage.
func (d *Detector) Detect(ctx context.Context, text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return DefaultLanguage
	}

	if d.remote != nil {
		if code, ok := d.detectRemote(ctx, trimmed); ok {
			return code
		}
	}
	return d.DetectLocal(trimmed)
}

// DetectLocal runs only the local strategy pipeline
func (d *Detector) DetectLocal(text string) string {
	for _, s := range d.strategies {
		if code := s.Detect(text); code != "" {
			d.log.WithFields(logrus.Fields{"strategy": s.Name(), "language": code}).Debug("Detected language locally")
			return code
		}
	}
	return DefaultLanguage
}

func (d *Detector) detectRemote(ctx context.Context, text string) (string, bool) {
	sample := text
	if runes := []rune(text); len(runes) > d.sampleSize {
		sample = string(runes[:d.sampleSize])
	}

	detections, err := d.remote.DetectRemote(ctx, sample)
	if err != nil {
		d.log.WithError(err).Debug("Remote language detection failed, using local heuristics")
		return "", false
	}

	best, bestConf := "", 0.0
	for _, det := range detections {
		conf := det.Confidence
		if conf > 1 {
			conf /= 100
		}
		code := d.normalizer.Normalize(det.Language)
		if code == "" || code == Auto || conf <= d.minConfidence {
			continue
		}
		if conf > bestConf {
			best, bestConf = code, conf
		}
	}
	if best == "" {
		d.log.Debug("Remote language detection returned nothing usable")
		return "", false
	}
	d.log.WithFields(logrus.Fields{"language": best, "confidence": bestConf}).Debug("Detected language remotely")
	return best, true
}
