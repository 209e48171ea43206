package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

type CategoryService struct {
	repo     repository.Repository
	cache    cache.Gateway
	cacheCfg *config.CacheConfig
	notifier *Notifier
}

func NewCategoryService(repo repository.Repository, cacheGateway cache.Gateway, cacheCfg *config.CacheConfig, notifier *Notifier) *CategoryService {
	return &CategoryService{
		repo:     repo,
		cache:    cacheGateway,
		cacheCfg: cacheCfg,
		notifier: notifier,
	}
}

func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return dto.CategoryResponse{}, err
	}

	if _, err := s.repo.Category().GetByName(ctx, req.Name); err == nil {
		return dto.CategoryResponse{}, ErrCategoryNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}

	category := req.ToCategory()
	if err := s.repo.Category().Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, ErrCategoryNameExists
		}
		return dto.CategoryResponse{}, err
	}

	invalidate(ctx, s.cache, tenantID, cache.DomainCategories, cache.DomainCatalog)
	s.notifier.Notify(ctx, domain.EventCategoryCreated, tenantID, category.ID)

	return dto.FromCategory(category), nil
}

// FindAll is served from the categories cache, keyed by the filter.
func (s *CategoryService) FindAll(ctx context.Context, filter domain.CategoryFilter) ([]dto.CategoryResponse, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key, err := cache.Key(cache.DomainCategories, tenantID, filter)
	if err != nil {
		return nil, err
	}

	return cache.Remember(ctx, s.cache, key, s.cacheCfg.CategoriesTTL, func(ctx context.Context) ([]dto.CategoryResponse, error) {
		categories, err := s.repo.Category().List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.FromCategories(categories), nil
	})
}

func (s *CategoryService) FindByID(ctx context.Context, id string) (dto.CategoryResponse, error) {
	category, err := s.get(ctx, id)
	if err != nil {
		return dto.CategoryResponse{}, err
	}
	return dto.FromCategory(category), nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	category, err := s.get(ctx, id)
	if err != nil {
		return dto.CategoryResponse{}, err
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.repo.Category().GetByName(ctx, *req.Name)
		if err == nil && existing.ID != id {
			return dto.CategoryResponse{}, ErrCategoryNameExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, err
		}
	}

	req.ApplyTo(category)
	if err := s.repo.Category().Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, ErrCategoryNameExists
		}
		return dto.CategoryResponse{}, translateNotFound(err, ErrCategoryNotFound)
	}

	// Product payloads embed category names, so their lists go stale too.
	invalidate(ctx, s.cache, category.TenantID, cache.DomainCategories, cache.DomainProducts, cache.DomainCatalog)
	s.notifier.Notify(ctx, domain.EventCategoryUpdated, category.TenantID, category.ID)

	return s.FindByID(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	category, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Category().Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrCategoryNotFound)
	}

	invalidate(ctx, s.cache, category.TenantID, cache.DomainCategories, cache.DomainProducts, cache.DomainCatalog)
	s.notifier.Notify(ctx, domain.EventCategoryDeleted, category.TenantID, category.ID)
	return nil
}

// get loads a category of the bound tenant. A row of another tenant is
// reported exactly like a missing one.
func (s *CategoryService) get(ctx context.Context, id string) (*domain.Category, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrCategoryNotFound
	}

	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrCategoryNotFound)
	}
	if category.TenantID != tenantID {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// invalidate drops every cached read of the given domains for one tenant.
func invalidate(ctx context.Context, gw cache.Gateway, tenantID string, domains ...string) {
	for _, d := range domains {
		gw.InvalidatePattern(ctx, cache.Pattern(d, tenantID))
	}
}
