package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/dmitrymomot/sessionkv/pkg/cookie"
)

// idBytes is the entropy of a generated session id: 128 random bits,
// rendered as 32 hex characters.
const idBytes = 16

// resolveID extracts the session id from the request's signed cookie, or
// mints a fresh one when the cookie is missing, unverifiable or empty.
// Tampering is never surfaced as an error; the caller simply gets a new
// anonymous identity. The resolved id is always (re)queued in the jar so the
// response re-signs it with the newest key.
func (m *Manager) resolveID(r *http.Request, jar *cookie.Jar) (string, error) {
	id, err := jar.Get(r, m.cookieName)
	if err != nil || id == "" {
		id, err = m.generateID()
		if err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
	}

	jar.Set(m.cookieName, id, m.cookieOpts...)
	return id, nil
}

// generateID is the default IDGenerator.
func generateID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
