package ranking

import (
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/cardfinder/internal/model"
)

// Cache defaults.
const (
	DefaultCacheTTL  = 15 * time.Minute
	DefaultCacheSize = 256
)

type cacheEntry struct {
	expiry  time.Time
	results model.MatchResults
}

// Cache memoizes rankings of a single catalog. It is safe for concurrent use.
type Cache struct {
	now     func() time.Time
	ranker  *Ranker
	entries map[Query]cacheEntry
	catalog model.Catalog
	ttl     time.Duration
	size    int
	mu      sync.RWMutex
}

// NewCache creates a cache in front of r for catalog c. Zero ttl or size
// selects the defaults.
func NewCache(r *Ranker, c model.Catalog, ttl time.Duration, size int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	if r == nil {
		r = New()
	}

	return &Cache{
		now:     time.Now,
		ranker:  r,
		catalog: c,
		entries: make(map[Query]cacheEntry),
		ttl:     ttl,
		size:    size,
	}
}

// Rank returns the ranking for q, computing it on a miss. Queries that differ
// only in surrounding whitespace share an entry.
func (c *Cache) Rank(q Query) model.MatchResults {
	key := Query{Text: strings.TrimSpace(q.Text), Category: q.Category, Language: q.Language}

	if results, ok := c.get(key); ok {
		return results
	}

	results := c.ranker.Rank(c.catalog, key)
	c.set(key, results)
	return clone(results)
}

// Len returns the number of cached rankings, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Query]cacheEntry)
}

func (c *Cache) get(key Query) (model.MatchResults, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || c.now().After(entry.expiry) {
		return nil, false
	}
	return clone(entry.results), true
}

func (c *Cache) set(key Query, results model.MatchResults) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.entries) >= c.size {
		for k, e := range c.entries {
			if now.After(e.expiry) {
				delete(c.entries, k)
			}
		}
	}
	if len(c.entries) >= c.size {
		c.entries = make(map[Query]cacheEntry)
	}

	c.entries[key] = cacheEntry{
		results: results,
		expiry:  now.Add(c.ttl),
	}
}

func clone(results model.MatchResults) model.MatchResults {
	out := make(model.MatchResults, len(results))
	copy(out, results)
	return out
}
