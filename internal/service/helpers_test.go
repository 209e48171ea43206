package service

import (
	"context"
	"time"

	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

const (
	tenantAcme = "11111111-1111-1111-1111-111111111111"
	tenantBeta = "22222222-2222-2222-2222-222222222222"

	category1    = "c0000000-0000-4000-8000-000000000001"
	category2    = "c0000000-0000-4000-8000-000000000002"
	categoryAcme = "c0000000-0000-4000-8000-0000000000a1"
	categoryBeta = "c0000000-0000-4000-8000-0000000000b2"

	product1    = "d0000000-0000-4000-8000-000000000001"
	product2    = "d0000000-0000-4000-8000-000000000002"
	product3    = "d0000000-0000-4000-8000-000000000003"
	product4    = "d0000000-0000-4000-8000-000000000004"
	productBeta = "d0000000-0000-4000-8000-0000000000b2"
	productOld  = "d0000000-0000-4000-8000-0000000000ff"

	user1    = "e0000000-0000-4000-8000-000000000001"
	user2    = "e0000000-0000-4000-8000-000000000002"
	user9    = "e0000000-0000-4000-8000-000000000009"
	userBeta = "e0000000-0000-4000-8000-0000000000b2"

	missingID = "f0000000-0000-4000-8000-000000000000"
)

func tenantCtx(id string) context.Context {
	return tenant.WithTenant(context.Background(), &domain.Tenant{ID: id, Slug: id[:4], Active: true})
}

func newTestGateway() cache.Gateway {
	return cache.NewGateway(cache.NewMemoryStore(1000, 4, time.Hour, 10), logger.NewNop())
}

func testCacheConfig() *config.CacheConfig {
	return &config.CacheConfig{
		CategoriesTTL: time.Minute,
		ProductsTTL:   time.Minute,
		CatalogTTL:    time.Minute,
	}
}

// seed stores a value under the key for domain and tenant and returns the key.
func seed(gw cache.Gateway, cacheDomain, tenantID string) string {
	key, _ := cache.Key(cacheDomain, tenantID, domain.CategoryFilter{Take: 20})
	gw.Set(context.Background(), key, []byte(`[]`), time.Minute)
	return key
}

func cached(gw cache.Gateway, key string) bool {
	_, ok := gw.Get(context.Background(), key)
	return ok
}
