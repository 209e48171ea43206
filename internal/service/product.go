package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

//go:generate mockery --name ImageStore --output ../mocks
type ImageStore interface {
	UploadProductImage(ctx context.Context, tenantID, productID, filename, contentType string, body io.Reader) (string, string, error)
	DeleteObject(ctx context.Context, key string) error
}

type ProductService struct {
	repo     repository.Repository
	cache    cache.Gateway
	cacheCfg *config.CacheConfig
	images   ImageStore
	notifier *Notifier
	logger   *logger.Logger
	now      func() time.Time
}

func NewProductService(
	repo repository.Repository,
	cacheGateway cache.Gateway,
	cacheCfg *config.CacheConfig,
	images ImageStore,
	notifier *Notifier,
	logger *logger.Logger,
) *ProductService {
	return &ProductService{
		repo:     repo,
		cache:    cacheGateway,
		cacheCfg: cacheCfg,
		images:   images,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	if err := s.ensureSKUAvailable(ctx, req.SKU, ""); err != nil {
		return dto.ProductResponse{}, err
	}

	product, categoryIDs := req.ToProduct()
	categoryIDs = uniqueIDs(categoryIDs)
	if err := s.ensureCategories(ctx, categoryIDs); err != nil {
		return dto.ProductResponse{}, err
	}

	if err := s.repo.Product().Create(ctx, product, categoryIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProductResponse{}, ErrSKUExists
		}
		return dto.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.changed(ctx, domain.EventProductCreated, tenantID, product.ID)
	return s.FindByID(ctx, product.ID)
}

// FindAll lists non-deleted products through the products cache.
func (s *ProductService) FindAll(ctx context.Context, filter domain.ProductFilter) ([]dto.ProductResponse, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if filter.CategoryID != "" && !validID(filter.CategoryID) {
		return nil, ErrUnknownCategory
	}

	key, err := cache.Key(cache.DomainProducts, tenantID, filter)
	if err != nil {
		return nil, err
	}

	return cache.Remember(ctx, s.cache, key, s.cacheCfg.ProductsTTL, func(ctx context.Context) ([]dto.ProductResponse, error) {
		products, err := s.repo.Product().List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.FromProducts(products), nil
	})
}

// FindByID returns the product even when soft-deleted; DeletedAt tells.
func (s *ProductService) FindByID(ctx context.Context, id string) (dto.ProductResponse, error) {
	product, err := s.get(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	product, err := s.getLive(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		if err := s.ensureSKUAvailable(ctx, *req.SKU, id); err != nil {
			return dto.ProductResponse{}, err
		}
	}

	relations := req.ApplyTo(product)
	if relations.CategoryIDs != nil {
		ids := uniqueIDs(*relations.CategoryIDs)
		relations.CategoryIDs = &ids
		if err := s.ensureCategories(ctx, ids); err != nil {
			return dto.ProductResponse{}, err
		}
	}
	product.UpdatedAt = s.now()

	if err := s.repo.Product().Update(ctx, product, relations); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProductResponse{}, ErrSKUExists
		}
		return dto.ProductResponse{}, translateNotFound(err, ErrProductNotFound)
	}

	s.changed(ctx, domain.EventProductUpdated, product.TenantID, id)
	return s.FindByID(ctx, id)
}

// Delete soft-deletes by default. Soft-deleting an already deleted product
// succeeds without another write; hard delete removes the row and children.
func (s *ProductService) Delete(ctx context.Context, id string, hard bool) (dto.ProductResponse, error) {
	product, err := s.get(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	if hard {
		if err := s.repo.Product().HardDelete(ctx, id); err != nil {
			return dto.ProductResponse{}, translateNotFound(err, ErrProductNotFound)
		}
		s.changed(ctx, domain.EventProductHardDeleted, product.TenantID, id)
		return dto.FromProduct(product), nil
	}

	if product.IsDeleted() {
		return dto.FromProduct(product), nil
	}

	at := s.now()
	if err := s.repo.Product().SoftDelete(ctx, id, at); err != nil {
		return dto.ProductResponse{}, translateNotFound(err, ErrProductNotFound)
	}
	product.DeletedAt = gorm.DeletedAt{Time: at, Valid: true}

	s.changed(ctx, domain.EventProductDeleted, product.TenantID, id)
	return dto.FromProduct(product), nil
}

// AddImage uploads an image to object storage and appends its URL to the
// product. The object is removed again when the product write fails.
func (s *ProductService) AddImage(ctx context.Context, id, filename, contentType string, body io.Reader) (dto.ImageUploadResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return dto.ImageUploadResponse{}, ErrInvalidImageType
	}

	product, err := s.getLive(ctx, id)
	if err != nil {
		return dto.ImageUploadResponse{}, err
	}

	key, url, err := s.images.UploadProductImage(ctx, product.TenantID, id, filename, contentType, body)
	if err != nil {
		return dto.ImageUploadResponse{}, err
	}

	product.Images = append(product.Images, url)
	product.UpdatedAt = s.now()
	if err := s.repo.Product().Update(ctx, product, domain.ProductRelations{}); err != nil {
		if delErr := s.images.DeleteObject(ctx, key); delErr != nil {
			s.logger.Error("Failed to remove orphaned product image", delErr, zap.String("key", key))
		}
		return dto.ImageUploadResponse{}, translateNotFound(err, ErrProductNotFound)
	}

	s.changed(ctx, domain.EventProductUpdated, product.TenantID, id)

	resp, err := s.FindByID(ctx, id)
	if err != nil {
		return dto.ImageUploadResponse{}, err
	}
	return dto.ImageUploadResponse{URL: url, Product: resp}, nil
}

// Search runs a full-text query against the tenant's search index.
func (s *ProductService) Search(ctx context.Context, query domain.ProductSearchQuery) ([]dto.ProductResponse, error) {
	if _, err := tenant.IDFromContext(ctx); err != nil {
		return nil, err
	}

	products, err := s.repo.Search().Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return dto.FromProducts(products), nil
}

func (s *ProductService) get(ctx context.Context, id string) (*domain.Product, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrProductNotFound
	}

	product, err := s.repo.Product().GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrProductNotFound)
	}
	if product.TenantID != tenantID {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// getLive is get for mutations: a soft-deleted product cannot be modified.
func (s *ProductService) getLive(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted() {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ensureSKUAvailable checks the SKU against every product of the tenant,
// soft-deleted ones included, except the product being updated.
func (s *ProductService) ensureSKUAvailable(ctx context.Context, sku, selfID string) error {
	existing, err := s.repo.Product().GetBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrSKUExists
	}
	return nil
}

func (s *ProductService) ensureCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if !validID(id) {
			return ErrUnknownCategory
		}
	}
	count, err := s.repo.Category().CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrUnknownCategory
	}
	return nil
}

func (s *ProductService) changed(ctx context.Context, eventType domain.CatalogEventType, tenantID, id string) {
	invalidate(ctx, s.cache, tenantID, cache.DomainProducts, cache.DomainCatalog)
	s.notifier.Notify(ctx, eventType, tenantID, id)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
