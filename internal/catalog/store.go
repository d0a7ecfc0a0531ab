package catalog

import "sync"

// Store holds the catalog currently being served. Individual Catalog values
// stay immutable; hosts that reload content build a fresh catalog and swap it
// in atomically via Replace.
type Store struct {
	mu      sync.RWMutex
	current *Catalog
}

// NewStore constructs a store, optionally seeded with an initial catalog.
func NewStore(initial *Catalog) *Store {
	return &Store{current: initial}
}

// Current returns the catalog being served, or nil when none was built yet.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps the served catalog for a freshly built one.
func (s *Store) Replace(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}
