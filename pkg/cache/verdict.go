package cache

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Verdict is a cached check outcome for one sample fingerprint.
type Verdict struct {
	OK  bool
	Msg string
}

// Stats represents verdict cache statistics
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// VerdictCache memoizes checker verdicts for samples that fingerprint
// identically. Only sound when every requirement predicate is
// deterministic in the sample.
type VerdictCache struct {
	cache *lru.Cache[string, Verdict]
	group singleflight.Group
	mu    sync.Mutex
	stats Stats
}

// NewVerdictCache creates a verdict cache holding up to size entries.
func NewVerdictCache(size int) (*VerdictCache, error) {
	cache, err := lru.New[string, Verdict](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create verdict cache: %w", err)
	}
	return &VerdictCache{cache: cache}, nil
}

// GetOrCheck returns the cached verdict for key, computing and storing it
// with check on a miss. Concurrent misses for the same key run check once.
func (c *VerdictCache) GetOrCheck(key string, check func() Verdict) Verdict {
	if v, ok := c.cache.Get(key); ok {
		c.mu.Lock()
		c.stats.Hits++
		c.mu.Unlock()
		return v
	}

	result, _, _ := c.group.Do(key, func() (interface{}, error) {
		v := check()
		c.cache.Add(key, v)
		return v, nil
	})

	c.mu.Lock()
	c.stats.Misses++
	c.mu.Unlock()

	return result.(Verdict)
}

// Stats returns a snapshot of the cache statistics.
func (c *VerdictCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Size = c.cache.Len()
	return stats
}

// Purge removes all cached verdicts.
func (c *VerdictCache) Purge() {
	c.cache.Purge()
}
