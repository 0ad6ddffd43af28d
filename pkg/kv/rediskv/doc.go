// Package rediskv provides a Redis-backed implementation of kv.Store.
//
// Entries live in hashes keyed by the flat key encoding, with value and
// version stored as fields of the same hash so every write stays atomic.
// Prefix listing rides on SCAN, so it is lazy and safe against large
// keyspaces, but inherits SCAN's unspecified iteration order.
//
//	store, err := rediskv.Open(ctx, rediskv.DefaultConfig())
//	if err != nil {
//	    ...
//	}
//	defer store.Close()
package rediskv
