// Package models lists the OpenAI models usable with an API key, grouped
// into translation chat models and vision models for text extraction.
package models
