package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
)

// Runner executes the underlying search command on a cache miss.
type Runner func() protocol.ExecutionResult

type searchEntry struct {
	fingerprint string
	result      protocol.ExecutionResult
}

// SearchCache is a read-through cache of search results keyed by verb,
// canonicalized arguments, and scope path. An entry is trusted only while the
// scope subtree's fingerprint is unchanged. Failed results are never stored,
// so transient failures retry instead of being pinned.
type SearchCache struct {
	mu      sync.RWMutex
	entries map[string]searchEntry
	group   singleflight.Group
}

// NewSearchCache creates an empty search cache.
func NewSearchCache() *SearchCache {
	return &SearchCache{entries: make(map[string]searchEntry)}
}

// Get returns the cached result for the key when the scope is unchanged,
// otherwise runs the search once under single-flight. All concurrent callers
// for one key observe the same outcome.
func (c *SearchCache) Get(verb string, args map[string]any, scopePath string, run Runner) (protocol.ExecutionResult, error) {
	key, err := SearchKey(verb, args, scopePath)
	if err != nil {
		return protocol.ExecutionResult{}, err
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		fingerprint, fpErr := Fingerprint(scopePath)
		if fpErr != nil {
			// Scope not walkable: run uncached, the command reports its
			// own failure.
			return run(), nil
		}

		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && entry.fingerprint == fingerprint {
			return entry.result, nil
		}

		result := run()
		if result.Success {
			c.mu.Lock()
			c.entries[key] = searchEntry{fingerprint: fingerprint, result: result}
			c.mu.Unlock()
		}
		return result, nil
	})
	if err != nil {
		return protocol.ExecutionResult{}, err
	}
	return value.(protocol.ExecutionResult), nil
}

// Len reports the number of cached entries.
func (c *SearchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
