package session_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
	"github.com/dmitrymomot/sessionkv/pkg/session"
)

func TestSession_Key_Composition(t *testing.T) {
	t.Parallel()

	manager, _ := setupManager(t, session.WithKeySpace("myspace"))
	sess, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := uuid.New()

	tests := []struct {
		name   string
		subKey any
		want   kv.Key
	}{
		{"single string", "cart", kv.Key{"myspace", sess.ID(), "cart"}},
		{"string slice", []string{"cart", "items"}, kv.Key{"myspace", sess.ID(), "cart", "items"}},
		{"kv key", kv.Key{"a", "b"}, kv.Key{"myspace", sess.ID(), "a", "b"}},
		{"mixed sequence", []any{"order", 42, true}, kv.Key{"myspace", sess.ID(), "order", "42", "true"}},
		{"single int", 7, kv.Key{"myspace", sess.ID(), "7"}},
		{"bytes part", []any{[]byte("raw")}, kv.Key{"myspace", sess.ID(), "raw"}},
		{"stringer part", []any{id}, kv.Key{"myspace", sess.ID(), id.String()}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sess.Key(tt.subKey)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Key_InvalidPart(t *testing.T) {
	t.Parallel()

	manager, _ := setupManager(t)
	sess, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	_, err = sess.Key(struct{ X int }{1})
	assert.ErrorIs(t, err, session.ErrInvalidKeyPart)

	_, err = sess.Key([]any{"ok", map[string]string{}})
	assert.ErrorIs(t, err, session.ErrInvalidKeyPart)
}

func TestSession_Key_NamespaceIsolation(t *testing.T) {
	t.Parallel()

	manager, _ := setupManager(t)

	a, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	b, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	require.NotEqual(t, a.ID(), b.ID())

	keyA, err := a.Key("profile")
	require.NoError(t, err)
	keyB, err := b.Key("profile")
	require.NoError(t, err)

	// Same sub-key, different sessions: keys never overlap.
	assert.False(t, keyA.Equal(keyB))
	assert.True(t, keyA.HasPrefix(kv.Key{"sessions", a.ID()}))
	assert.True(t, keyB.HasPrefix(kv.Key{"sessions", b.ID()}))
}

func TestSession_DataIsolationAcrossSessions(t *testing.T) {
	t.Parallel()

	manager, _ := setupManager(t)
	ctx := context.Background()

	a, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	b, err := manager.Session(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	require.NoError(t, a.Set(ctx, "secret", []byte("a-only")))

	_, ok, err := b.Get(ctx, "secret")
	require.NoError(t, err)
	assert.False(t, ok, "session b must not see session a's data")

	it := b.List(ctx)
	assert.False(t, it.Next(ctx))
	require.NoError(t, it.Err())
}
