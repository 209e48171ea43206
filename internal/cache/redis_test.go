package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_SetGetWithTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "categories:a:{}", []byte(`[]`), 600*time.Second))

	value, err := store.Get(ctx, "categories:a:{}")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
	assert.Equal(t, 600*time.Second, mr.TTL("categories:a:{}"))

	mr.FastForward(601 * time.Second)

	_, err = store.Get(ctx, "categories:a:{}")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_DeletePrefixAcrossScanPages(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	for i := 0; i < scanBatchSize+25; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf(`products:a:{"skip":%d}`, i), []byte("x"), time.Minute))
	}
	require.NoError(t, store.Set(ctx, `products:b:{"skip":0}`, []byte("keep"), time.Minute))
	require.NoError(t, store.Set(ctx, `catalog:a:{"skip":0}`, []byte("keep"), time.Minute))

	deleted, err := store.DeletePrefix(ctx, "products:a:")
	require.NoError(t, err)
	assert.Equal(t, scanBatchSize+25, deleted)

	assert.True(t, mr.Exists(`products:b:{"skip":0}`))
	assert.True(t, mr.Exists(`catalog:a:{"skip":0}`))
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Error(t, store.Ping(ctx))
}

func TestGateway_WithRedisStoreDegradesWhenDown(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	gw := NewGateway(store, nopLogger())
	mr.Close()

	got, err := Remember(ctx, gw, "k", time.Minute, func(context.Context) (string, error) {
		return "from-db", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "from-db", got)
}
