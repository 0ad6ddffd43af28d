package kv

import "context"

// Entry is a single stored record. Version is an opaque token that changes on
// every write of the key; two reads observing the same Version observed the
// same write.
type Entry struct {
	Key     Key
	Value   []byte
	Version string
}

// Iterator is a lazy cursor over a prefix scan. A new Iterator is produced by
// every List call; an exhausted or failed Iterator cannot be rewound.
//
//	it := store.List(ctx, prefix)
//	for it.Next(ctx) {
//	    entry := it.Entry()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    ...
//	}
type Iterator interface {
	// Next advances the cursor. It returns false when the scan is exhausted
	// or an error occurred; check Err after the loop.
	Next(ctx context.Context) bool

	// Entry returns the record at the current cursor position. Only valid
	// after Next returned true.
	Entry() Entry

	// Err returns the first error encountered during iteration, if any.
	Err() error
}

// Store is an ordered key-value engine. Keys are ordered sequences of parts;
// List scans are bounded by a key prefix. Implementations provide per-key
// atomicity only; no multi-key transactions are assumed by callers.
type Store interface {
	// Get returns the entry stored under key. The second return value
	// reports whether the key exists; absence is not an error.
	Get(ctx context.Context, key Key) (Entry, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key Key, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key Key) error

	// List returns a lazy iterator over all entries whose key starts with
	// prefix, in the engine's native order.
	List(ctx context.Context, prefix Key) Iterator

	// Close releases the underlying engine handle.
	Close() error
}
