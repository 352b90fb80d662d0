// Package format reassembles translated chunks and repairs the joined text.
// Cleanup is expressed as ordered lists of pure text rules so each rule can
// be tested and toggled on its own.
package format
