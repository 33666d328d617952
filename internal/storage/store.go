package storage

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dreamware/strand/internal/analyzer"
	"github.com/dreamware/strand/internal/errors"
)

// Entry represents one analyzed string.
// Immutable once created; the store never hands out entries it intends to
// modify later.
type Entry struct {
	// CreatedAt is the UTC insertion timestamp, fixed at creation.
	CreatedAt time.Time `json:"created_at"`

	// ID is the content fingerprint of the trimmed value and doubles as
	// the primary key.
	ID string `json:"id"`

	// Value is the original, untrimmed input string as submitted.
	Value string `json:"value"`

	// Properties is the analyzer output for the trimmed value.
	Properties analyzer.Properties `json:"properties"`
}

// NewEntry analyzes value and builds the entry that represents it.
// The entry id equals the analyzed SHA-256 hash, so the same trimmed value
// always produces the same id.
func NewEntry(value string) Entry {
	props := analyzer.Analyze(value)
	return Entry{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  time.Now().UTC(),
	}
}

// StoreStats contains operational statistics about the store
type StoreStats struct {
	Gets    uint64 `json:"gets"`    // Number of lookups served
	Inserts uint64 `json:"inserts"` // Number of successful inserts
	Deletes uint64 `json:"deletes"` // Number of successful deletes
	Keys    int    `json:"keys"`    // Number of entries currently stored
}

// Store is the in-memory entry store, keyed by content fingerprint.
// Uses sync.RWMutex for thread-safe concurrent access.
type Store struct {
	mu      sync.RWMutex     // Protects concurrent access to entries
	entries map[string]Entry // Fingerprint to entry
	ops     opCounters       // Atomic operation counters
}

// opCounters tracks operation counts without holding the store lock
type opCounters struct {
	gets    atomic.Uint64
	inserts atomic.Uint64
	deletes atomic.Uint64
}

// NewStore creates a new empty in-memory store
func NewStore() *Store {
	return &Store{
		entries: make(map[string]Entry),
	}
}

// Insert adds entry to the store.
// Returns errors.ErrConflict if an entry with the same id is already
// present; the existing entry is left untouched. The check and the write
// happen under one exclusive lock so concurrent duplicate inserts cannot
// both succeed.
func (s *Store) Insert(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID]; exists {
		return errors.Wrapf(errors.ErrConflict, "string already exists with id %s", entry.ID)
	}

	s.entries[entry.ID] = entry
	s.ops.inserts.Add(1)
	return nil
}

// GetByValue looks up the entry whose id is the fingerprint of rawValue's
// trimmed form. Returns errors.ErrNotFound if absent.
func (s *Store) GetByValue(rawValue string) (Entry, error) {
	id := analyzer.Fingerprint(rawValue)

	s.mu.RLock()
	entry, exists := s.entries[id]
	s.mu.RUnlock()

	s.ops.gets.Add(1)
	if !exists {
		return Entry{}, errors.Wrapf(errors.ErrNotFound, "no string with id %s", id)
	}
	return entry, nil
}

// DeleteByValue removes the entry whose id is the fingerprint of rawValue's
// trimmed form. Returns errors.ErrNotFound if absent, so a double delete
// fails cleanly the second time even under concurrent requests.
func (s *Store) DeleteByValue(rawValue string) error {
	id := analyzer.Fingerprint(rawValue)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; !exists {
		return errors.Wrapf(errors.ErrNotFound, "no string with id %s", id)
	}

	delete(s.entries, id)
	s.ops.deletes.Add(1)
	return nil
}

// ListAll returns a snapshot of every entry in the store.
// The slice is freshly allocated under the read lock, so concurrent writes
// never corrupt the returned collection. Order is not guaranteed.
func (s *Store) ListAll() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	return entries
}

// Len returns the number of entries currently stored
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns operational statistics for the store
func (s *Store) Stats() StoreStats {
	return StoreStats{
		Gets:    s.ops.gets.Load(),
		Inserts: s.ops.inserts.Load(),
		Deletes: s.ops.deletes.Load(),
		Keys:    s.Len(),
	}
}
