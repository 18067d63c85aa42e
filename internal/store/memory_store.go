package store

import (
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
)

// Entry is a cached player dictionary and when it was fetched upstream.
type Entry struct {
	Dictionary players.Dictionary
	FetchedAt  time.Time
}

// MemoryStore keeps thread-safe player dictionaries in memory, keyed by sport.
// Stored dictionaries are shared with callers and must be treated as read-only.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Get retrieves the dictionary cached for sport.
func (s *MemoryStore) Get(sport string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[sport]
	return e, ok
}

// Set replaces the dictionary cached for sport.
func (s *MemoryStore) Set(sport string, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sport] = entry
}

// Sports lists the sports currently held in memory, sorted.
func (s *MemoryStore) Sports() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.entries))
	for sport := range s.entries {
		out = append(out, sport)
	}
	sort.Strings(out)
	return out
}
