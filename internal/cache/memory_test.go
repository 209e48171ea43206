package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore() *MemoryStore {
	return NewMemoryStore(1000, 4, time.Hour, 10)
}

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := newTestMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_PerKeyTTL(t *testing.T) {
	ctx := context.Background()
	store := newTestMemoryStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "short", []byte("1"), 5*time.Minute))
	require.NoError(t, store.Set(ctx, "long", []byte("2"), 10*time.Minute))

	now = now.Add(6 * time.Minute)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
	value, err := store.Get(ctx, "long")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), value)
}

func TestMemoryStore_DeletePrefixIsTenantScoped(t *testing.T) {
	ctx := context.Background()
	store := newTestMemoryStore()

	require.NoError(t, store.Set(ctx, `products:a:{"skip":0}`, []byte("a1"), time.Minute))
	require.NoError(t, store.Set(ctx, `products:a:{"skip":20}`, []byte("a2"), time.Minute))
	require.NoError(t, store.Set(ctx, `products:b:{"skip":0}`, []byte("b1"), time.Minute))

	deleted, err := store.DeletePrefix(ctx, "products:a:")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = store.Get(ctx, `products:a:{"skip":0}`)
	assert.ErrorIs(t, err, ErrCacheMiss)
	value, err := store.Get(ctx, `products:b:{"skip":0}`)
	require.NoError(t, err)
	assert.Equal(t, []byte("b1"), value)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestMemoryStore()
	require.NoError(t, store.Set(ctx, "k1", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "k2", []byte("2"), time.Minute))

	require.NoError(t, store.Delete(ctx, "k1", "k2"))

	_, err := store.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = store.Get(ctx, "k2")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, store.Ping(ctx))
}
