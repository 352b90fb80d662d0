package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Auto is the pseudo source language asking for detection
const Auto = "auto"

// Normalizer canonicalizes language codes using an alias table
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer creates a normalizer from the alias table in t
func NewNormalizer(t *Tables) *Normalizer {
	return &Normalizer{aliases: t.Aliases}
}

var defaultNormalizer = NewNormalizer(DefaultTables())

// Normalize canonicalizes code with the embedded alias table
func Normalize(code string) string {
	return defaultNormalizer.Normalize(code)
}

// Normalize maps aliases such as "russian" or "zh-CN" to canonical codes
// and tidies region tags ("pt_br" becomes "pt-BR"). Codes that cannot be
// parsed pass through unchanged apart from surrounding whitespace.
func (n *Normalizer) Normalize(code string) string {
	trimmed := strings.TrimSpace(code)
	c := strings.ToLower(trimmed)
	if c == "" || c == Auto {
		return c
	}
	if alias, ok := n.aliases[c]; ok {
		return alias
	}

	tag, err := language.Parse(strings.ReplaceAll(c, "_", "-"))
	if err != nil {
		return trimmed
	}
	base, conf := tag.Base()
	if conf == language.No {
		return trimmed
	}
	if !strings.ContainsAny(c, "-_") {
		return base.String()
	}
	if region, rconf := tag.Region(); rconf == language.Exact {
		return base.String() + "-" + region.String()
	}
	return base.String()
}

// Base strips any region from a canonical code ("pt-BR" becomes "pt")
func Base(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}
