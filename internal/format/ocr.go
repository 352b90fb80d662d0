package format

import "regexp"

var (
	rnInsideWord = regexp.MustCompile(`(\p{Ll})rn(\p{Ll})`)
	loneZero     = regexp.MustCompile(`\b0\b`)
	loneOne      = regexp.MustCompile(`\b1\b`)
	lonePipe     = regexp.MustCompile(`(^|\s)\|(\s|$)`)
)

// OCRRules correct common character recognition confusions. They can
// corrupt correct text and are only applied when explicitly enabled.
var OCRRules = []Rule{
	{Name: "rn-to-m", Apply: func(s string) string { return rnInsideWord.ReplaceAllString(s, "${1}m${2}") }},
	{Name: "zero-to-O", Apply: func(s string) string { return loneZero.ReplaceAllString(s, "O") }},
	{Name: "one-to-I", Apply: func(s string) string { return loneOne.ReplaceAllString(s, "I") }},
	{Name: "pipe-to-I", Apply: func(s string) string { return lonePipe.ReplaceAllString(s, "${1}I${2}") }},
}

// CleanOCR applies OCRRules to text extracted from an image
func CleanOCR(text string) string {
	return Apply(OCRRules, text)
}
