package session

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// Destroy wipes every entry in the session's namespace, drops the session
// cookie and assigns a fresh anonymous id with an empty namespace. Deletes
// are issued one key at a time; there is no cross-key transaction, so a
// concurrent writer racing this call may leave entries behind.
func (s *Session) Destroy(ctx context.Context) error {
	it := s.store.List(ctx, s.prefix())
	for it.Next(ctx) {
		if err := s.store.Delete(ctx, it.Entry().Key); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	id, err := s.generateID()
	if err != nil {
		return errors.Join(ErrIDGeneration, err)
	}

	s.jar.Delete(s.cookieName, s.cookieOpts...)
	s.updateID(id)
	return nil
}

// Refresh migrates every entry in the session's namespace to a new id and
// re-signs the cookie under it. When newID is omitted a fresh random id is
// minted. The new id is returned. Refreshing to the session's current id
// only re-signs the cookie; stored entries stay where they are.
//
// Every key part equal to the literal old id is rewritten, not only the
// namespace slot; a sub-key part that happens to equal the old id migrates
// with it. Per entry the value is written under the new key before the old
// key is deleted, so an interruption duplicates data rather than losing it.
// There is no rollback: a failure partway through leaves the namespace split
// between the two ids.
func (s *Session) Refresh(ctx context.Context, newID ...string) (string, error) {
	next := ""
	if len(newID) > 0 {
		next = newID[0]
	}
	if next == "" {
		generated, err := s.generateID()
		if err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
		next = generated
	}

	old := s.id

	it := s.store.List(ctx, s.prefix())
	for it.Next(ctx) {
		entry := it.Entry()

		rewritten := make(kv.Key, len(entry.Key))
		for i, part := range entry.Key {
			if part == old {
				rewritten[i] = next
			} else {
				rewritten[i] = part
			}
		}

		// Refreshing to the current id leaves the key unchanged; deleting
		// it here would wipe the entry just written.
		if rewritten.Equal(entry.Key) {
			continue
		}

		if err := s.store.Set(ctx, rewritten, entry.Value); err != nil {
			return "", err
		}
		if err := s.store.Delete(ctx, entry.Key); err != nil {
			return "", err
		}
	}
	if err := it.Err(); err != nil {
		return "", err
	}

	s.updateID(next)
	return next, nil
}
