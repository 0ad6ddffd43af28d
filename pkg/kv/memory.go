package kv

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store with an in-process map. Safe for concurrent
// use. Intended for tests and single-process deployments; data does not
// survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	closed  bool
}

type memoryEntry struct {
	value   []byte
	version string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the entry stored under key.
func (s *MemoryStore) Get(ctx context.Context, key Key) (Entry, bool, error) {
	if len(key) == 0 {
		return Entry{}, false, ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Entry{}, false, ErrStoreClosed
	}

	e, ok := s.entries[key.Encode()]
	if !ok {
		return Entry{}, false, nil
	}

	value := make([]byte, len(e.value))
	copy(value, e.value)

	return Entry{Key: key, Value: value, Version: e.version}, true, nil
}

// Set stores value under key, assigning a fresh version token.
func (s *MemoryStore) Set(ctx context.Context, key Key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.entries[key.Encode()] = memoryEntry{
		value:   stored,
		version: uuid.NewString(),
	}
	return nil
}

// Delete removes key. Absent keys are ignored.
func (s *MemoryStore) Delete(ctx context.Context, key Key) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	delete(s.entries, key.Encode())
	return nil
}

// List returns a lazy iterator over a snapshot of all entries under prefix,
// ordered lexicographically by encoded key. The snapshot is taken when List
// is called; concurrent writes are not reflected mid-iteration.
func (s *MemoryStore) List(ctx context.Context, prefix Key) Iterator {
	encodedPrefix := prefix.EncodePrefix()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return &memoryIterator{err: ErrStoreClosed}
	}

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		if strings.HasPrefix(k, encodedPrefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, encoded := range keys {
		key, err := DecodeKey(encoded)
		if err != nil {
			return &memoryIterator{err: err}
		}

		e := s.entries[encoded]
		value := make([]byte, len(e.value))
		copy(value, e.value)

		entries = append(entries, Entry{Key: key, Value: value, Version: e.version})
	}

	return &memoryIterator{entries: entries}
}

// Close marks the store closed; subsequent operations fail with
// ErrStoreClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.entries = nil
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

type memoryIterator struct {
	entries []Entry
	pos     int
	current Entry
	err     error
}

func (it *memoryIterator) Next(ctx context.Context) bool {
	if it.err != nil || it.pos >= len(it.entries) {
		return false
	}
	if err := ctx.Err(); err != nil {
		it.err = err
		return false
	}

	it.current = it.entries[it.pos]
	it.pos++
	return true
}

func (it *memoryIterator) Entry() Entry { return it.current }

func (it *memoryIterator) Err() error { return it.err }
