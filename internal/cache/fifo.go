package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
)

// DefaultCapacity is the number of translations kept before eviction starts.
const DefaultCapacity = 100

// ErrComputePanicked is returned to callers waiting on a computation that panicked
var ErrComputePanicked = errors.New("cache: computation panicked")

// Key builds the cache key for a translation request. The text is trimmed
// before hashing so that requests differing only in surrounding whitespace
// share an entry.
func Key(text, from, to string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:]) + ":" + from + ":" + to
}

// call tracks a computation in flight for one key
type call struct {
	done chan struct{}
	val  string
	err  error
}

// FIFO is a bounded key/value store evicting the oldest inserted entry.
// Reads do not refresh an entry's position. It is safe for concurrent use.
type FIFO struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string
	inflight map[string]*call
}

// NewFIFO creates a cache holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func NewFIFO(capacity int) *FIFO {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FIFO{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
		order:    make([]string, 0, capacity),
		inflight: make(map[string]*call),
	}
}

// Get retrieves a cached translation
func (c *FIFO) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores value under key. Overwriting an existing key keeps its
// original insertion position.
func (c *FIFO) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, value)
}

func (c *FIFO) put(key, value string) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// GetOrCompute returns the cached value for key, or runs compute and stores
// its result. Concurrent callers asking for the same missing key share one
// computation. A failed computation is not cached.
func (c *FIFO) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (string, error)) (string, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.val, cl.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	panicked := true
	defer func() {
		c.mu.Lock()
		if panicked {
			cl.err = ErrComputePanicked
		} else if cl.err == nil {
			c.put(key, cl.val)
		}
		delete(c.inflight, key)
		c.mu.Unlock()
		close(cl.done)
	}()

	cl.val, cl.err = compute(ctx)
	panicked = false
	return cl.val, cl.err
}

// Len returns the number of cached entries
func (c *FIFO) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Capacity returns the configured maximum number of entries
func (c *FIFO) Capacity() int {
	return c.capacity
}

// Clear drops every entry. Computations in flight still complete and store
// their result afterwards.
func (c *FIFO) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string, c.capacity)
	c.order = make([]string, 0, c.capacity)
}
