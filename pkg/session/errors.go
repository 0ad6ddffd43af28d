package session

import "errors"

var (
	// ErrInvalidKeyPart indicates a sub-key contained a part of an
	// unsupported type.
	ErrInvalidKeyPart = errors.New("session.invalid_key_part")

	// ErrStoreRequired indicates a Manager was constructed without a
	// key-value store.
	ErrStoreRequired = errors.New("session.store_required")

	// ErrIDGeneration indicates the random source failed while minting a
	// session id.
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrValueNotFound indicates GetJSON found no entry under the sub-key.
	ErrValueNotFound = errors.New("session.value_not_found")
)
