package session

import (
	"context"
	"encoding/json"

	"github.com/dmitrymomot/sessionkv/pkg/cookie"
	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// Session is a request-scoped view over the shared key-value store,
// namespaced by the session's identity. All internals are private; the
// current id is only ever replaced through Destroy or Refresh, which also
// re-sign the cookie.
//
// A Session is created per request and must not be shared across concurrent
// requests.
type Session struct {
	store      kv.Store
	jar        *cookie.Jar
	id         string
	keySpace   string
	cookieName string
	cookieOpts []cookie.Option
	generateID IDGenerator
}

// ID returns the session's current id.
func (s *Session) ID() string {
	return s.id
}

// Get reads the entry stored under the sub-key. The second return value
// reports whether the entry exists; absence is not an error.
func (s *Session) Get(ctx context.Context, subKey any) (kv.Entry, bool, error) {
	key, err := s.Key(subKey)
	if err != nil {
		return kv.Entry{}, false, err
	}
	return s.store.Get(ctx, key)
}

// Set writes value under the sub-key. Last write wins; this layer adds no
// ordering beyond what the engine provides.
func (s *Session) Set(ctx context.Context, subKey any, value []byte) error {
	key, err := s.Key(subKey)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, value)
}

// Delete removes the entry under the sub-key. Absent entries are ignored.
func (s *Session) Delete(ctx context.Context, subKey any) error {
	key, err := s.Key(subKey)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

// List returns a lazy iterator over every entry in the session's namespace,
// in the engine's native order. Each call starts a fresh scan.
func (s *Session) List(ctx context.Context) kv.Iterator {
	return s.store.List(ctx, s.prefix())
}

// SetJSON marshals v and stores it under the sub-key.
func (s *Session) SetJSON(ctx context.Context, subKey any, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, subKey, data)
}

// GetJSON reads the entry under the sub-key and unmarshals it into dest.
// Returns ErrValueNotFound when the entry does not exist.
func (s *Session) GetJSON(ctx context.Context, subKey any, dest any) error {
	entry, ok, err := s.Get(ctx, subKey)
	if err != nil {
		return err
	}
	if !ok {
		return ErrValueNotFound
	}
	return json.Unmarshal(entry.Value, dest)
}

// updateID swaps the current id and re-signs the session cookie under it.
func (s *Session) updateID(id string) {
	s.id = id
	s.jar.Set(s.cookieName, id, s.cookieOpts...)
}
