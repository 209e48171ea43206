package service

import (
	"context"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

// CatalogService builds the storefront view of a tenant's catalog.
type CatalogService struct {
	repo     repository.Repository
	cache    cache.Gateway
	cacheCfg *config.CacheConfig
}

func NewCatalogService(repo repository.Repository, cacheGateway cache.Gateway, cacheCfg *config.CacheConfig) *CatalogService {
	return &CatalogService{
		repo:     repo,
		cache:    cacheGateway,
		cacheCfg: cacheCfg,
	}
}

// Storefront returns active products (skip/take applied to products) grouped
// under active categories in display order.
func (s *CatalogService) Storefront(ctx context.Context, query domain.CatalogQuery) (dto.CatalogResponse, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return dto.CatalogResponse{}, err
	}

	key, err := cache.Key(cache.DomainCatalog, tenantID, query)
	if err != nil {
		return dto.CatalogResponse{}, err
	}

	return cache.Remember(ctx, s.cache, key, s.cacheCfg.CatalogTTL, func(ctx context.Context) (dto.CatalogResponse, error) {
		catalog, err := s.build(ctx, query)
		if err != nil {
			return dto.CatalogResponse{}, err
		}
		return dto.FromCatalog(catalog), nil
	})
}

func (s *CatalogService) build(ctx context.Context, query domain.CatalogQuery) (*domain.Catalog, error) {
	active := true

	categories, err := s.repo.Category().List(ctx, domain.CategoryFilter{Active: &active})
	if err != nil {
		return nil, err
	}

	products, err := s.repo.Product().List(ctx, domain.ProductFilter{
		Skip:   query.Skip,
		Take:   query.Take,
		Active: &active,
	})
	if err != nil {
		return nil, err
	}

	return groupCatalog(categories, products), nil
}

func groupCatalog(categories []domain.Category, products []domain.Product) *domain.Catalog {
	catalog := &domain.Catalog{
		Sections:      make([]domain.CatalogSection, len(categories)),
		Uncategorized: []domain.Product{},
	}

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		catalog.Sections[i] = domain.CatalogSection{Category: c, Products: []domain.Product{}}
	}

	for _, p := range products {
		if len(p.Categories) == 0 {
			catalog.Uncategorized = append(catalog.Uncategorized, p)
			continue
		}
		for _, c := range p.Categories {
			if i, ok := index[c.ID]; ok {
				catalog.Sections[i].Products = append(catalog.Sections[i].Products, p)
			}
		}
	}
	return catalog
}
