// Package lang canonicalizes language codes and guesses the language of a
// text. Detection asks a remote endpoint first and falls back to a local
// pipeline of heuristic strategies driven by data tables (script classes,
// diacritics and stop words) that can be replaced through configuration.
package lang
