// Package history keeps a short list of recently committed search queries.
package history

import (
	"strings"
	"sync"
)

// DefaultSize is the number of queries kept when no size is given.
const DefaultSize = 5

// History holds recent queries, newest first, without duplicates.
// It is safe for concurrent use.
type History struct {
	entries []string
	size    int
	mu      sync.RWMutex
}

// New creates a history that keeps at most size entries.
func New(size int) *History {
	if size <= 0 {
		size = DefaultSize
	}
	return &History{size: size}
}

// Add records a query. Blank queries and queries already present are ignored.
// It reports whether the history changed.
func (h *History) Add(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entries {
		if e == query {
			return false
		}
	}

	entries := make([]string, 0, h.size)
	entries = append(entries, query)
	for _, e := range h.entries {
		if len(entries) == h.size {
			break
		}
		entries = append(entries, e)
	}
	h.entries = entries

	return true
}

// Entries returns a copy of the recorded queries, newest first.
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded queries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear removes every entry.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
