package session

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkv/pkg/cookie"
	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// IDGenerator mints new session ids. Implementations must draw from a
// cryptographically secure source.
type IDGenerator func() (string, error)

// Manager creates request-scoped sessions over a shared key-value store.
// The store handle is opened once and shared by every session the manager
// produces; only the cookie jar and identity are per request.
type Manager struct {
	store      kv.Store
	signer     *cookie.Signer
	cookieName string
	keySpace   string
	cookieOpts []cookie.Option
	generateID IDGenerator
	logger     *slog.Logger
}

// New creates a session manager over store, signing cookies with the given
// rotating key list (newest first). Options override the defaults: cookie
// name "sid", key space "sessions", cookie path "/".
func New(store kv.Store, signingKeys []string, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	signer, err := cookie.NewSigner(signingKeys)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		store:      store,
		signer:     signer,
		cookieName: "sid",
		keySpace:   "sessions",
		cookieOpts: []cookie.Option{cookie.WithPath("/")},
		generateID: generateID,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Session resolves the request's identity and returns a session bound to it.
// A fresh anonymous id is minted when the request carries no valid session
// cookie; either way the resolved id is queued as a signed cookie, so the
// very first response already assigns the session durably.
func (m *Manager) Session(r *http.Request) (*Session, error) {
	jar := m.signer.Jar()

	id, err := m.resolveID(r, jar)
	if err != nil {
		return nil, err
	}

	return &Session{
		store:      m.store,
		jar:        jar,
		id:         id,
		keySpace:   m.keySpace,
		cookieName: m.cookieName,
		cookieOpts: m.cookieOpts,
		generateID: m.generateID,
	}, nil
}
