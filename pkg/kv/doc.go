// Package kv defines the ordered key-value engine abstraction used by the
// session layer, plus an in-process implementation.
//
// Keys are ordered sequences of string parts. Engines with flat keyspaces
// (Redis, SQL) store the query-escaped, separator-joined form produced by
// Key.Encode, which preserves both decodability and the prefix relation.
//
// # Usage
//
//	store := kv.NewMemoryStore()
//	defer store.Close()
//
//	key := kv.Key{"sessions", "abc123", "cart"}
//	_ = store.Set(ctx, key, []byte(`{"items":3}`))
//
//	it := store.List(ctx, kv.Key{"sessions", "abc123"})
//	for it.Next(ctx) {
//	    fmt.Println(it.Entry().Key)
//	}
//
// Backed implementations live in the rediskv and pgkv sub-packages.
package kv
