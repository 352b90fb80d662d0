package translation

import "sync/atomic"

// ProviderStats counts the outcomes of one provider's calls
type ProviderStats struct {
	Name       string
	Attempts   int64
	Successes  int64
	Failures   int64 // Network failures, malformed responses, open breaker
	Rejections int64 // Answers refused by the validator
}

// Stats is a snapshot of the engine's counters
type Stats struct {
	Requests            int64 // Translations that needed the chain or cache
	Computed            int64 // Cache misses that ran the pipeline
	DictionaryFallbacks int64
	Providers           []ProviderStats
}

type providerCounters struct {
	attempts, successes, failures, rejections atomic.Int64
}

type stats struct {
	names      []string
	providers  []*providerCounters
	requests   atomic.Int64
	computed   atomic.Int64
	dictionary atomic.Int64
}

func newStats(names []string) *stats {
	s := &stats{names: names, providers: make([]*providerCounters, len(names))}
	for i := range s.providers {
		s.providers[i] = &providerCounters{}
	}
	return s
}

// Stats returns a snapshot of the engine's counters
func (e *Engine) Stats() Stats {
	out := Stats{
		Requests:            e.stats.requests.Load(),
		Computed:            e.stats.computed.Load(),
		DictionaryFallbacks: e.stats.dictionary.Load(),
		Providers:           make([]ProviderStats, len(e.stats.names)),
	}
	for i, name := range e.stats.names {
		c := e.stats.providers[i]
		out.Providers[i] = ProviderStats{
			Name:       name,
			Attempts:   c.attempts.Load(),
			Successes:  c.successes.Load(),
			Failures:   c.failures.Load(),
			Rejections: c.rejections.Load(),
		}
	}
	return out
}
