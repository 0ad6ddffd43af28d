package rediskv_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
	"github.com/dmitrymomot/sessionkv/pkg/kv/rediskv"
)

func setupStore(t *testing.T) *rediskv.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return rediskv.New(client)
}

func TestStore_SetGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	key := kv.Key{"sessions", "abc", "name"}
	require.NoError(t, store.Set(ctx, key, []byte("bob")))

	entry, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, []byte("bob"), entry.Value)
	assert.NotEmpty(t, entry.Version)
}

func TestStore_GetMissing(t *testing.T) {
	store := setupStore(t)

	_, ok, err := store.Get(context.Background(), kv.Key{"nope"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_EmptyKey(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, _, err := store.Get(ctx, nil)
	assert.ErrorIs(t, err, kv.ErrEmptyKey)
	assert.ErrorIs(t, store.Set(ctx, nil, []byte("v")), kv.ErrEmptyKey)
	assert.ErrorIs(t, store.Delete(ctx, nil), kv.ErrEmptyKey)
}

func TestStore_VersionChangesPerWrite(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	key := kv.Key{"k"}
	require.NoError(t, store.Set(ctx, key, []byte("v1")))
	first, _, err := store.Get(ctx, key)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, key, []byte("v2")))
	second, _, err := store.Get(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, []byte("v2"), second.Value)
	assert.NotEqual(t, first.Version, second.Version)
}

func TestStore_Delete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	key := kv.Key{"sessions", "abc", "name"}
	require.NoError(t, store.Set(ctx, key, []byte("bob")))
	require.NoError(t, store.Delete(ctx, key))

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, key))
}

func TestStore_ListPrefix(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kv.Key{"sessions", "a", "x"}, []byte("1")))
	require.NoError(t, store.Set(ctx, kv.Key{"sessions", "a", "y"}, []byte("2")))
	require.NoError(t, store.Set(ctx, kv.Key{"sessions", "b", "x"}, []byte("3")))
	require.NoError(t, store.Set(ctx, kv.Key{"other", "a"}, []byte("4")))

	got := map[string]string{}
	it := store.List(ctx, kv.Key{"sessions", "a"})
	for it.Next(ctx) {
		entry := it.Entry()
		got[entry.Key.String()] = string(entry.Value)
	}
	require.NoError(t, it.Err())

	assert.Equal(t, map[string]string{
		"sessions/a/x": "1",
		"sessions/a/y": "2",
	}, got)
}

func TestStore_ListDoesNotMatchPartialParts(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kv.Key{"sessions", "abc", "x"}, []byte("1")))
	require.NoError(t, store.Set(ctx, kv.Key{"sessions", "abcdef", "x"}, []byte("2")))

	count := 0
	it := store.List(ctx, kv.Key{"sessions", "abc"})
	for it.Next(ctx) {
		count++
	}
	require.NoError(t, it.Err())
	assert.Equal(t, 1, count)
}

func TestStore_ListRestartsPerCall(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kv.Key{"p", "a"}, []byte("1")))

	for n := 0; n < 2; n++ {
		it := store.List(ctx, kv.Key{"p"})
		count := 0
		for it.Next(ctx) {
			count++
		}
		require.NoError(t, it.Err())
		assert.Equal(t, 1, count)
	}
}

func TestOpen_BadURL(t *testing.T) {
	cfg := rediskv.DefaultConfig()
	cfg.ConnectionURL = "not-a-url"

	_, err := rediskv.Open(context.Background(), cfg)
	assert.ErrorIs(t, err, rediskv.ErrFailedToParseConnString)
}
