// Package validate decides whether a provider's candidate translation is
// usable. The checks are cheap quality heuristics, not linguistic ones.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrRejected is wrapped by every rejection reason
var ErrRejected = errors.New("translation rejected")

var (
	ErrEmpty          = fmt.Errorf("%w: empty candidate", ErrRejected)
	ErrEcho           = fmt.Errorf("%w: candidate echoes the original", ErrRejected)
	ErrRepetitive     = fmt.Errorf("%w: candidate is repetitive", ErrRejected)
	ErrProviderMarker = fmt.Errorf("%w: candidate contains a provider error marker", ErrRejected)
)

const (
	// MaxEchoLength is the longest original that may come back unchanged
	MaxEchoLength = 3
	// MinDistinctRatio is the lowest accepted distinct/total word ratio
	MinDistinctRatio = 0.7
	// minWordsForRepetition is the word count above which repetition is checked
	minWordsForRepetition = 3
)

// DefaultMarkers are fragments free endpoints put in place of a translation
// when they refuse to serve one. Matched case-insensitively.
var DefaultMarkers = []string{
	"MYMEMORY WARNING",
	"QUOTA EXCEEDED",
	"INVALID LANGUAGE PAIR",
	"PLEASE SELECT TWO DISTINCT LANGUAGES",
	"TOO MANY REQUESTS",
	"<error",
	"[error]",
}

var (
	properNounRe = regexp.MustCompile(`^\p{Lu}\p{Ll}*(?:[\s-]+\p{Lu}\p{Ll}*)*$`)
	numericRe    = regexp.MustCompile(`^[\d\s.,:+\-/%]+$`)
)

// Validator checks candidate translations
type Validator struct {
	markers []string
}

// New creates a validator. With no markers DefaultMarkers are used.
func New(markers ...string) *Validator {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	lowered := make([]string, len(markers))
	for i, m := range markers {
		lowered[i] = strings.ToLower(m)
	}
	return &Validator{markers: lowered}
}

// Validate returns nil when candidate is an acceptable translation of
// original into target, or an error wrapping ErrRejected.
func (v *Validator) Validate(original, candidate, target string) error {
	c := strings.TrimSpace(candidate)
	o := strings.TrimSpace(original)

	if c == "" {
		return ErrEmpty
	}

	if strings.EqualFold(c, o) && !echoAllowed(o) {
		return fmt.Errorf("%w (target %s)", ErrEcho, target)
	}

	words := strings.Fields(strings.ToLower(c))
	if len(words) > minWordsForRepetition {
		distinct := make(map[string]struct{}, len(words))
		for _, w := range words {
			distinct[w] = struct{}{}
		}
		if float64(len(distinct))/float64(len(words)) < MinDistinctRatio {
			return ErrRepetitive
		}
	}

	lower := strings.ToLower(c)
	for _, m := range v.markers {
		if strings.Contains(lower, m) {
			return fmt.Errorf("%w: %q", ErrProviderMarker, m)
		}
	}
	return nil
}

// echoAllowed reports whether an unchanged original is plausibly already
// its own translation: very short tokens, proper nouns and numbers.
func echoAllowed(o string) bool {
	return utf8.RuneCountInString(o) <= MaxEchoLength ||
		properNounRe.MatchString(o) ||
		numericRe.MatchString(o)
}
