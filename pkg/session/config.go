package session

import (
	"strings"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// Config holds session manager configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// KeySpace is the root key part under which all session data lives
	// (default: "sessions")
	KeySpace string `env:"SESSION_KEY_SPACE" envDefault:"sessions"`

	// SigningKeys is a comma-separated list of cookie signing secrets,
	// newest first. The first key signs; all keys verify.
	SigningKeys string `env:"SESSION_SIGNING_KEYS,required"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration. SigningKeys must
// still be provided.
func DefaultConfig() Config {
	return Config{
		CookieName: "sid",
		KeySpace:   "sessions",
	}
}

// parseSigningKeys splits the comma-separated key list.
func (c Config) parseSigningKeys() []string {
	if c.SigningKeys == "" {
		return nil
	}

	parts := strings.Split(c.SigningKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, k := range parts {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// NewFromConfig creates a Manager from the provided Config. Options passed
// explicitly override config values, which override package defaults.
func NewFromConfig(cfg Config, store kv.Store, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}
	if cfg.KeySpace != "" {
		configOpts = append(configOpts, WithKeySpace(cfg.KeySpace))
	}
	if cfg.SecureCookies {
		configOpts = append(configOpts, WithSecureCookies())
	}

	configOpts = append(configOpts, opts...)

	return New(store, cfg.parseSigningKeys(), configOpts...)
}
