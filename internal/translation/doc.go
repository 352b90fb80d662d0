// Package translation orchestrates a text translation: language detection,
// segmentation, the provider fallback chain with validation, the dictionary
// fallback, formatting reconstruction and result caching. The Engine never
// returns an error; the worst outcome is the original text.
package translation
