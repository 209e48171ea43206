package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/pkg/logger"
)

// Gateway is the best-effort cache used by services. A failing backend
// degrades to "always miss"; it never fails the caller.
//
//go:generate mockery --name Gateway --output ../mocks
type Gateway interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, key string)
	InvalidatePattern(ctx context.Context, pattern string)
	Ping(ctx context.Context) error
}

type gateway struct {
	store  Store
	logger *logger.Logger
}

func NewGateway(store Store, logger *logger.Logger) Gateway {
	return &gateway{store: store, logger: logger}
}

func (g *gateway) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			g.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

func (g *gateway) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := g.store.Set(ctx, key, value, ttl); err != nil {
		g.logger.Warn("Cache set failed", zap.String("key", key), zap.Duration("ttl", ttl), zap.Error(err))
	}
}

func (g *gateway) Invalidate(ctx context.Context, key string) {
	if err := g.store.Delete(ctx, key); err != nil {
		g.logger.Warn("Cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}

func (g *gateway) InvalidatePattern(ctx context.Context, pattern string) {
	prefix := prefixOf(pattern)
	// An empty or bare-domain prefix would flush other tenants' entries.
	if strings.Count(prefix, ":") < 2 {
		g.logger.Warn("Refusing cache invalidation without tenant prefix", zap.String("pattern", pattern))
		return
	}
	n, err := g.store.DeletePrefix(ctx, prefix)
	if err != nil {
		g.logger.Warn("Cache pattern invalidate failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	g.logger.Debug("Cache pattern invalidated", zap.String("pattern", pattern), zap.Int("keys", n))
}

func (g *gateway) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}

// Remember implements cache-aside: a hit is decoded and returned verbatim,
// a miss (or undecodable entry) calls fetch and stores its result for ttl.
func Remember[T any](ctx context.Context, gw Gateway, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if raw, ok := gw.Get(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		gw.Invalidate(ctx, key)
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err == nil {
		gw.Set(ctx, key, raw, ttl)
	}
	return value, nil
}
