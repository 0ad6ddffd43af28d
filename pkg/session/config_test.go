package session_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
	"github.com/dmitrymomot/sessionkv/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Equal(t, "sid", cfg.CookieName)
	assert.Equal(t, "sessions", cfg.KeySpace)
	assert.Empty(t, cfg.SigningKeys)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	cfg := session.DefaultConfig()
	cfg.CookieName = "app_sid"
	cfg.KeySpace = "app_sessions"
	cfg.SigningKeys = testSigningKey + " , extra-signing-key-also-long-enough-9876"

	manager, err := session.NewFromConfig(cfg, store)
	require.NoError(t, err)

	sess, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	key, err := sess.Key("x")
	require.NoError(t, err)
	assert.Equal(t, kv.Key{"app_sessions", sess.ID(), "x"}, key)

	cookies := cookiesFor(t, sess)
	require.Len(t, cookies, 1)
	assert.Equal(t, "app_sid", cookies[0].Name)
}

func TestNewFromConfig_OptionsOverrideConfig(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	cfg := session.DefaultConfig()
	cfg.CookieName = "from_config"
	cfg.SigningKeys = testSigningKey

	manager, err := session.NewFromConfig(cfg, store, session.WithCookieName("from_option"))
	require.NoError(t, err)

	sess, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	cookies := cookiesFor(t, sess)
	require.Len(t, cookies, 1)
	assert.Equal(t, "from_option", cookies[0].Name)
}

func TestNewFromConfig_NoKeys(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	_, err := session.NewFromConfig(session.DefaultConfig(), store)
	assert.Error(t, err)
}
