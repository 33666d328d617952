// Package storage provides the in-memory keyed store for analyzed string
// entries, the single source of truth for everything strand serves.
//
// # Overview
//
// The store maps content fingerprints to immutable entries. An entry is
// created once on insert and never mutated; the only ways out are explicit
// delete-by-value and process exit. Nothing is persisted, so a restart
// clears all entries.
//
// # Keying
//
// Every lookup, insert, and delete keys on the SHA-256 fingerprint of the
// trimmed value (analyzer.Fingerprint). Two values that differ only in
// surrounding whitespace resolve to the same entry, and inserting a
// duplicate fingerprint is rejected with a conflict rather than merged or
// overwritten.
//
// # Concurrency and Thread Safety
//
// A single sync.RWMutex guards the map:
//   - Read operations use shared locks (RLock)
//   - Insert and delete take the exclusive lock, making the
//     check-then-act sequence atomic so duplicate-insert and double-delete
//     behave correctly under concurrent requests
//   - ListAll copies the entries into a fresh slice under the read lock,
//     so callers never observe a partially constructed entry
//
// Operation counters use atomics and may be read without the lock.
//
// # Error Handling
//
// Failures are reported through the service error taxonomy:
//
//	errors.ErrConflict - Insert of an already-present fingerprint
//	errors.ErrNotFound - GetByValue or DeleteByValue of an absent fingerprint
//
// Check with errors.Is; the HTTP layer maps these to 409 and 404.
package storage
