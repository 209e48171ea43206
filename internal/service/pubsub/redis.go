package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

const (
	channelPrefix = "catalog_events:"
)

type RedisPubSub struct {
	client       redis.UniversalClient
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // tenant ID -> subscription
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client redis.UniversalClient, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(tenantID string) string {
	return channelPrefix + tenantID
}

// Publish sends a catalog event to the tenant's channel.
func (ps *RedisPubSub) Publish(ctx context.Context, event *domain.CatalogEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	channel := ps.getChannelName(event.TenantID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe starts delivering a tenant's catalog events to callback until ctx
// is done or Unsubscribe is called. Subscribing twice is a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, tenantID string, callback func(*domain.CatalogEvent)) error {
	channel := ps.getChannelName(tenantID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[tenantID]; exists {
		ps.subscriberMu.Unlock()
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[tenantID] = sub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for tenant channel: %s", channel)
			ps.subscriberMu.Lock()
			if ps.subscribers[tenantID] == sub {
				delete(ps.subscribers, tenantID)
			}
			ps.subscriberMu.Unlock()
			sub.Close()
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event domain.CatalogEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Warnf("Skipping malformed catalog event on channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to tenant channel: %s", channel)
	return nil
}

func (ps *RedisPubSub) Unsubscribe(tenantID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[tenantID]; exists {
		sub.Close()
		delete(ps.subscribers, tenantID)
		ps.logger.Infof("Unsubscribed from tenant channel: %s", ps.getChannelName(tenantID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for tenantID, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, tenantID)
	}
}
