// Package provider implements the translation backends: three free HTTP
// endpoints plus optional OpenAI and Gemini models, each optionally guarded
// by a circuit breaker.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Provider translates a single chunk of text
type Provider interface {
	// Name returns the provider name used in config and logs
	Name() string

	// Translate returns the provider's candidate translation of text
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Kind classifies provider failures
type Kind int

const (
	// NetworkFailure means the request could not complete
	NetworkFailure Kind = iota
	// MalformedResponse means the response shape was unexpected
	MalformedResponse
)

func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case MalformedResponse:
		return "malformed response"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrCircuitOpen is returned while a provider's breaker rejects calls
var ErrCircuitOpen = errors.New("circuit breaker open")

// ErrMissingKey is returned when a provider needs credentials that are not configured
var ErrMissingKey = errors.New("API key not configured")

// Error is a failed provider call
type Error struct {
	Provider string
	Kind     Kind
	Status   int // HTTP or API status, 0 if none
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a provider error and whether err is one
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

func networkError(name string, status int, err error) error {
	return &Error{Provider: name, Kind: NetworkFailure, Status: status, Err: err}
}

func malformed(name string, err error) error {
	return &Error{Provider: name, Kind: MalformedResponse, Err: err}
}
