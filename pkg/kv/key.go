package kv

import (
	"net/url"
	"slices"
	"strings"
)

// keySeparator joins escaped key parts in the flat encoding. The escaping
// guarantees the separator never appears inside an encoded part, so encoded
// keys remain unambiguous and prefix-ordered.
const keySeparator = ":"

// Key is an ordered sequence of key parts. The empty Key is valid as a List
// prefix (matches everything) but not as a storage key.
type Key []string

// Append returns a new Key with parts added at the end. The receiver is not
// modified.
func (k Key) Append(parts ...string) Key {
	out := make(Key, 0, len(k)+len(parts))
	out = append(out, k...)
	out = append(out, parts...)
	return out
}

// Equal reports whether two keys have identical part sequences.
func (k Key) Equal(other Key) bool {
	return slices.Equal(k, other)
}

// HasPrefix reports whether key starts with the given prefix, part by part.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	return slices.Equal(k[:len(prefix)], prefix)
}

// String renders the key for logs and error messages. Not reversible; use
// Encode for storage.
func (k Key) String() string {
	return strings.Join(k, "/")
}

// Encode flattens the key into a single string for engines with flat
// keyspaces (Redis, SQL). Each part is query-escaped so the separator cannot
// occur inside a part, which keeps Decode unambiguous and preserves the
// prefix relation: k.HasPrefix(p) iff Encode(k) starts with EncodePrefix(p).
func (k Key) Encode() string {
	parts := make([]string, len(k))
	for i, p := range k {
		parts[i] = url.QueryEscape(p)
	}
	return strings.Join(parts, keySeparator)
}

// EncodePrefix encodes the key as a scan prefix: the flat encoding followed
// by the part separator, so "a" matches ["a","b"] but not ["ab"].
func (k Key) EncodePrefix() string {
	if len(k) == 0 {
		return ""
	}
	return k.Encode() + keySeparator
}

// DecodeKey reverses Encode.
func DecodeKey(encoded string) (Key, error) {
	if encoded == "" {
		return nil, ErrEmptyKey
	}

	raw := strings.Split(encoded, keySeparator)
	key := make(Key, len(raw))
	for i, p := range raw {
		part, err := url.QueryUnescape(p)
		if err != nil {
			return nil, ErrMalformedKey
		}
		key[i] = part
	}
	return key, nil
}
