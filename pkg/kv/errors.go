package kv

import "errors"

var (
	// ErrEmptyKey indicates a storage operation was attempted with a key
	// that has no parts.
	ErrEmptyKey = errors.New("kv.empty_key")

	// ErrMalformedKey indicates a flat-encoded key could not be decoded.
	ErrMalformedKey = errors.New("kv.malformed_key")

	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("kv.store_closed")
)
