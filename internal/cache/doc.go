// Package cache provides the bounded in-memory result cache shared by all
// translation requests of a process. Entries are evicted in insertion order
// once the configured capacity is reached.
package cache
