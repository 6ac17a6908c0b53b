package cache

import (
	"os"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader fetches the complete content of a file.
type Loader func() (string, error)

type contentEntry struct {
	content   string
	mtimeNano int64
	size      int64
}

// ContentCache is a read-through cache of whole-file contents keyed by
// canonical absolute path. Entries are re-validated against the file's
// current mtime and size on every read; stale or missing entries trigger
// exactly one load per key regardless of concurrent callers.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[string]contentEntry
	group   singleflight.Group
}

// NewContentCache creates an empty content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{entries: make(map[string]contentEntry)}
}

// Get returns cached content for path when fresh, otherwise invokes load once
// under single-flight and stores the result. Load failures are not cached.
func (c *ContentCache) Get(path string, load Loader) (string, error) {
	if content, ok := c.fresh(path); ok {
		return content, nil
	}

	value, err, _ := c.group.Do(path, func() (any, error) {
		// A waiter may arrive after the winner already refreshed the entry.
		if content, ok := c.fresh(path); ok {
			return content, nil
		}

		info, statErr := os.Stat(path)
		if statErr != nil {
			return "", statErr
		}
		content, loadErr := load()
		if loadErr != nil {
			return "", loadErr
		}

		c.mu.Lock()
		c.entries[path] = contentEntry{
			content:   content,
			mtimeNano: info.ModTime().UnixNano(),
			size:      info.Size(),
		}
		c.mu.Unlock()
		return content, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// fresh returns the cached content when the entry matches the file's current
// mtime and size.
func (c *ContentCache) fresh(path string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if info.ModTime().UnixNano() != entry.mtimeNano || info.Size() != entry.size {
		return "", false
	}
	return entry.content, true
}

// Len reports the number of cached entries.
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
