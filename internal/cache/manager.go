package cache

// Manager aggregates the two session caches. It is constructed once per
// process and passed explicitly to every consumer; there is no ambient
// global cache. Entries live for the process lifetime, freshness is enforced
// by per-read staleness checks rather than eviction.
type Manager struct {
	// Content caches whole-file contents by canonical path.
	Content *ContentCache
	// Search caches search results by verb, arguments, and scope.
	Search *SearchCache
}

// NewManager creates a Manager with empty caches.
func NewManager() *Manager {
	return &Manager{
		Content: NewContentCache(),
		Search:  NewSearchCache(),
	}
}
