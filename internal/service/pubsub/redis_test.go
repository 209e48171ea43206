package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

func newPubSub(t *testing.T) *RedisPubSub {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPubSub(client, logger.NewNop())
}

func TestPublishSubscribe_TenantChannelsAreIsolated(t *testing.T) {
	ps := newPubSub(t)
	defer ps.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	acme := make(chan *domain.CatalogEvent, 4)
	beta := make(chan *domain.CatalogEvent, 4)
	require.NoError(t, ps.Subscribe(ctx, "tenant-a", func(e *domain.CatalogEvent) { acme <- e }))
	require.NoError(t, ps.Subscribe(ctx, "tenant-b", func(e *domain.CatalogEvent) { beta <- e }))

	// Subscriptions are established asynchronously.
	require.Eventually(t, func() bool {
		n, err := ps.client.PubSubNumSub(ctx, ps.getChannelName("tenant-a")).Result()
		return err == nil && n[ps.getChannelName("tenant-a")] == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, ps.Publish(ctx, &domain.CatalogEvent{Type: domain.EventProductCreated, TenantID: "tenant-a", EntityID: "p-1"}))

	select {
	case e := <-acme:
		assert.Equal(t, "p-1", e.EntityID)
		assert.Equal(t, domain.EventProductCreated, e.Type)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	select {
	case e := <-beta:
		t.Fatalf("tenant-b received %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribe_Twice(t *testing.T) {
	ps := newPubSub(t)
	defer ps.Close()

	require.NoError(t, ps.Subscribe(context.Background(), "tenant-a", func(*domain.CatalogEvent) {}))
	require.NoError(t, ps.Subscribe(context.Background(), "tenant-a", func(*domain.CatalogEvent) {}))

	ps.subscriberMu.RLock()
	defer ps.subscriberMu.RUnlock()
	assert.Len(t, ps.subscribers, 1)
}

func TestUnsubscribe(t *testing.T) {
	ps := newPubSub(t)
	require.NoError(t, ps.Subscribe(context.Background(), "tenant-a", func(*domain.CatalogEvent) {}))

	ps.Unsubscribe("tenant-a")

	ps.subscriberMu.RLock()
	defer ps.subscriberMu.RUnlock()
	assert.Empty(t, ps.subscribers)
}
