package archive

import (
	"iter"
	"slices"
	"sync"
)

// Store holds one session's entries, newest first. A store is created when
// its session starts and discarded with it; nothing ever touches disk.
// Entries have no identity beyond their position: the only mutations are
// prepend and full clear.
//
// The mutex exists because two browser tabs can share one session cookie.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// InsertFront prepends an entry. No deduplication, no size cap.
func (s *Store) InsertFront(e Entry) {
	if e == nil {
		return
	}
	s.mu.Lock()
	s.entries = append([]Entry{e}, s.entries...)
	s.mu.Unlock()
}

// ClearAll empties the store. Irreversible within the session.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// At returns the entry at position i in current order (0 is newest).
func (s *Store) At(i int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.entries) {
		return nil, false
	}
	return s.entries[i], true
}

// All returns a restartable sequence over the entries in current order,
// newest first. Each restart observes a fresh snapshot, so iteration is
// safe against concurrent mutation.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		s.mu.RLock()
		snapshot := slices.Clone(s.entries)
		s.mu.RUnlock()
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}
