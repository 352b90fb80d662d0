package provider

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	// DefaultBreakerFailures is the consecutive failure count that opens a breaker
	DefaultBreakerFailures = 3
	// DefaultBreakerCooldown is how long an open breaker rejects calls
	DefaultBreakerCooldown = 30 * time.Second
)

// Breaker skips a provider after repeated failures until a cooldown passes.
// After the cooldown a single trial call decides whether it closes again.
type Breaker struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreaker wraps p in a circuit breaker. Zero values select the defaults.
func NewBreaker(p Provider, failures uint32, cooldown time.Duration, log logrus.FieldLogger) *Breaker {
	if failures == 0 {
		failures = DefaultBreakerFailures
	}
	if cooldown <= 0 {
		cooldown = DefaultBreakerCooldown
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	settings := gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"provider": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("Circuit breaker state changed")
		},
		// A cancelled caller says nothing about the provider's health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &Breaker{provider: p, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Name returns the wrapped provider's name
func (b *Breaker) Name() string {
	return b.provider.Name()
}

// State returns the breaker state: closed, open or half-open
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Translate calls the wrapped provider unless the breaker is open. A
// rejected call is reported as a network failure wrapping ErrCircuitOpen.
func (b *Breaker) Translate(ctx context.Context, text, from, to string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.Translate(ctx, text, from, to)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", networkError(b.Name(), 0, ErrCircuitOpen)
	}
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
