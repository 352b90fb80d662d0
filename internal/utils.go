package internal

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// NewRequestID returns a short random identifier used to correlate log lines
// of a single translation request.
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Truncate shortens s to at most n runes, appending "..." when it was cut.
// Used to keep log fields readable.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
