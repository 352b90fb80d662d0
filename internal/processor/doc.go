// Package processor contains the command-line workflows of totaltranslate.
// It builds the translation engine from the configuration and coordinates
// it with text extraction from images, batch files and the translation
// history. This package serves as the main coordinator between all other
// components.
package processor
