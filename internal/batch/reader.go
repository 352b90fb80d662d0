package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry is one translation request from a batch file
type Entry struct {
	Line int    // 1-based line number in the file
	Text string // Text to translate
	From string // Source language, empty for the default
	To   string // Target language, empty for the default
}

// pairPrefix matches an optional "from>to:" language pair prefix
var pairPrefix = regexp.MustCompile(`^([A-Za-z]{2,12}(?:[-_][A-Za-z0-9]{2,8})?)?>([A-Za-z]{2,12}(?:[-_][A-Za-z0-9]{2,8})?)\s*:\s*`)

// ReadBatchFile reads translation requests from a file.
// Supports formats:
// - Text only: "Hello world" (default languages)
// - With language pair: "en>ru: Hello world"
// - Target only: ">de: Hello world" (default source)
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads translation requests line by line
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var entries []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if entry, ok := ParseLine(scanner.Text()); ok {
			entry.Line = lineNo
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return entries, nil
}

// ParseLine parses a single batch line. It reports false for blank lines,
// comments and language pairs without text.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	m := pairPrefix.FindStringSubmatch(line)
	if m == nil {
		return Entry{Text: line}, true
	}

	text := strings.TrimSpace(line[len(m[0]):])
	if text == "" {
		return Entry{}, false
	}
	return Entry{Text: text, From: m[1], To: m[2]}, true
}
