package resources

import (
	"sort"
	"sync"
)

// Store is the in-memory resource index. The importer replaces its contents
// wholesale on each reindex; readers always see a consistent snapshot.
type Store struct {
	mu      sync.RWMutex
	entries []Summary
}

// NewStore constructs an empty index.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps the index for a new set of entries, ordered newest first and
// then by title for stable output.
func (s *Store) Replace(entries []Summary) {
	copied := make([]Summary, len(entries))
	for i, entry := range entries {
		copied[i] = entry.Clone()
	}
	sort.SliceStable(copied, func(i, j int) bool {
		if !copied[i].PublishedAt.Equal(copied[j].PublishedAt) {
			return copied[i].PublishedAt.After(copied[j].PublishedAt)
		}
		return copied[i].Title < copied[j].Title
	})

	s.mu.Lock()
	s.entries = copied
	s.mu.Unlock()
}

// All returns a snapshot of every indexed entry.
func (s *Store) All() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Len reports the number of indexed entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
