package session

import (
	"log/slog"

	"github.com/dmitrymomot/sessionkv/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.cookieName = name
	}
}

// WithKeySpace sets the root key part under which session data is stored.
func WithKeySpace(keySpace string) Option {
	return func(m *Manager) {
		m.keySpace = keySpace
	}
}

// WithCookieOptions replaces the attributes applied to the session cookie.
// The default is Path "/".
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieOpts = opts
	}
}

// WithSecureCookies adds the Secure attribute to the session cookie.
func WithSecureCookies() Option {
	return func(m *Manager) {
		m.cookieOpts = append(m.cookieOpts, cookie.WithSecure(true))
	}
}

// WithIDGenerator replaces the default 128-bit hex id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Manager) {
		m.generateID = gen
	}
}

// WithLogger sets the logger used by the HTTP middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}
