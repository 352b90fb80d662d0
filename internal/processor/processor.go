package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/totaltranslate/internal"
	"codeberg.org/snonux/totaltranslate/internal/archive"
	"codeberg.org/snonux/totaltranslate/internal/batch"
	"codeberg.org/snonux/totaltranslate/internal/cli"
	"codeberg.org/snonux/totaltranslate/internal/format"
	"codeberg.org/snonux/totaltranslate/internal/history"
	"codeberg.org/snonux/totaltranslate/internal/ocr"
	"codeberg.org/snonux/totaltranslate/internal/translation"
)

var (
	header  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	faint   = color.New(color.Faint)
)

// Processor handles the translation workflows of the command line
type Processor struct {
	flags     *cli.Flags
	config    *cli.Config
	engine    *translation.Engine
	extractor ocr.Extractor  // nil without an OpenAI key
	history   *history.Store // nil when recording is disabled
	out       io.Writer
	log       logrus.FieldLogger
}

// NewProcessor creates a processor with an engine, text extractor and
// history store built from the configuration
func NewProcessor(ctx context.Context, flags *cli.Flags, config *cli.Config, log logrus.FieldLogger) (*Processor, error) {
	engine, err := BuildEngine(ctx, config, log)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		flags:  flags,
		config: config,
		engine: engine,
		out:    os.Stdout,
		log:    log,
	}

	if config.OpenAIKey != "" {
		extractor, err := ocr.NewOpenAIExtractor(config.OpenAIKey, config.OCRModel, "")
		if err != nil {
			return nil, err
		}
		p.extractor = extractor
	}

	if !flags.NoHistory && config.HistoryPath != "" {
		store, err := history.Open(config.HistoryPath)
		if err != nil {
			// History is a convenience, translating still works without it
			log.WithError(err).Warn("Translation history disabled")
		} else {
			p.history = store
		}
	}

	return p, nil
}

// Close releases the history database
func (p *Processor) Close() error {
	if p.history == nil {
		return nil
	}
	err := p.history.Close()
	p.history = nil
	return err
}

// Engine returns the translation engine
func (p *Processor) Engine() *translation.Engine {
	return p.engine
}

// ProcessText translates text with the configured languages and prints it
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to translate")
	}

	result := p.engine.TranslateText(ctx, text, p.config.From, p.config.To)
	fmt.Fprintln(p.out, result)

	p.record(ctx, history.SourceText, text, result, p.config.From, p.config.To)
	return nil
}

// ProcessImage extracts the text of an image file and translates it
func (p *Processor) ProcessImage(ctx context.Context, path string) error {
	if p.extractor == nil {
		return fmt.Errorf("text extraction needs an OpenAI API key. Set OPENAI_API_KEY or openai.key in .totaltranslate.yaml")
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	text, err := p.extractor.ExtractText(ctx, image)
	if errors.Is(err, ocr.ErrNoText) {
		warning.Fprintf(p.out, "No text found in %s\n", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if p.config.OCRCleanup {
		text = format.CleanOCR(text)
	}

	header.Fprintln(p.out, "Extracted text:")
	fmt.Fprintln(p.out, text)
	header.Fprintln(p.out, "\nTranslation:")

	result := p.engine.TranslateText(ctx, text, p.config.From, p.config.To)
	fmt.Fprintln(p.out, result)

	p.record(ctx, history.SourceImage, text, result, p.config.From, p.config.To)
	return nil
}

// ProcessBatch translates every request of the batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	translated := 0
	for i, entry := range entries {
		from, to := p.config.From, p.config.To
		if entry.From != "" {
			from = entry.From
		}
		if entry.To != "" {
			to = entry.To
		}

		result := p.engine.TranslateText(ctx, entry.Text, from, to)
		if result != entry.Text {
			translated++
		}

		faint.Fprintf(p.out, "%d/%d [%s>%s] ", i+1, len(entries), from, to)
		fmt.Fprintf(p.out, "%s\n  %s\n", internal.Truncate(entry.Text, 60), success.Sprint(result))

		p.record(ctx, history.SourceBatch, entry.Text, result, from, to)
	}

	// Print summary
	header.Fprintf(p.out, "\n=== Batch Summary ===\n")
	fmt.Fprintf(p.out, "Requests: %d\n", len(entries))
	fmt.Fprintf(p.out, "Changed by translation: %d\n", translated)
	if unchanged := len(entries) - translated; unchanged > 0 {
		warning.Fprintf(p.out, "Unchanged: %d\n", unchanged)
	}
	fmt.Fprintf(p.out, "=====================\n")
	return nil
}

// Detect prints the language of text
func (p *Processor) Detect(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to detect")
	}
	fmt.Fprintln(p.out, p.engine.DetectLanguage(ctx, text))
	return nil
}

// PrintStats prints the engine counters
func (p *Processor) PrintStats() {
	stats := p.engine.Stats()

	header.Fprintln(p.out, "\n=== Provider Statistics ===")
	fmt.Fprintf(p.out, "Requests: %d (computed %d)\n", stats.Requests, stats.Computed)
	for _, ps := range stats.Providers {
		fmt.Fprintf(p.out, "%-15s attempts %d, ", ps.Name, ps.Attempts)
		success.Fprintf(p.out, "successes %d", ps.Successes)
		fmt.Fprintf(p.out, ", failures %d, rejections %d\n", ps.Failures, ps.Rejections)
	}
	if stats.DictionaryFallbacks > 0 {
		warning.Fprintf(p.out, "Dictionary fallbacks: %d\n", stats.DictionaryFallbacks)
	}
}

// ShowHistory prints the last n recorded translations
func (p *Processor) ShowHistory(ctx context.Context, n int) error {
	if p.history == nil {
		return fmt.Errorf("translation history is disabled")
	}

	entries, err := p.history.Recent(ctx, n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "No translations recorded yet")
		return nil
	}

	for _, e := range entries {
		faint.Fprintf(p.out, "%s %-5s [%s>%s] ", e.CreatedAt.Format("2006-01-02 15:04"), e.Source, e.From, e.To)
		fmt.Fprintf(p.out, "%s => %s\n", internal.Truncate(e.Input, 40), internal.Truncate(e.Output, 40))
	}
	return nil
}

// ArchiveHistory closes the history database and moves it to the archive
func (p *Processor) ArchiveHistory() error {
	path := p.config.HistoryPath
	if err := p.Close(); err != nil {
		return fmt.Errorf("failed to close history: %w", err)
	}

	archivePath, err := archive.ArchiveHistory(path)
	if err != nil {
		return err
	}
	success.Fprintf(p.out, "History archived to: %s\n", archivePath)
	return nil
}

func (p *Processor) record(ctx context.Context, source, input, output, from, to string) {
	if p.history == nil {
		return
	}
	_, err := p.history.Record(ctx, history.Entry{
		Source: source,
		Input:  input,
		Output: output,
		From:   from,
		To:     to,
	})
	if err != nil {
		p.log.WithError(err).Warn("Failed to record translation")
	}
}
