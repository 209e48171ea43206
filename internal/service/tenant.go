package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

// TenantService manages tenants for platform operators and implements
// tenant.Lookup for request resolution.
type TenantService struct {
	repo             repository.Repository
	cache            cache.Gateway
	logger           *logger.Logger
	defaultRateLimit int
}

func NewTenantService(repo repository.Repository, cacheGateway cache.Gateway, logger *logger.Logger, defaultRateLimit int) *TenantService {
	return &TenantService{
		repo:             repo,
		cache:            cacheGateway,
		logger:           logger,
		defaultRateLimit: defaultRateLimit,
	}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if _, err := s.repo.Tenant().GetBySlug(ctx, slug); err == nil {
		return dto.TenantResponse{}, ErrTenantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TenantResponse{}, err
	}

	rateLimit := s.defaultRateLimit
	if req.RateLimit != nil {
		rateLimit = *req.RateLimit
	}

	tenant := &domain.Tenant{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Slug:      slug,
		Domain:    normalizeDomain(req.Domain),
		Active:    true,
		RateLimit: rateLimit,
	}

	createdTenant, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.TenantResponse{}, ErrTenantExists
		}
		return dto.TenantResponse{}, err
	}

	return dto.FromTenant(createdTenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	if !validID(id) {
		return nil, ErrTenantNotFound
	}
	t, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrTenantNotFound)
	}
	return t, nil
}

// Update applies the supplied fields. Deactivating a tenant revokes every
// refresh token it issued and drops its cached reads.
func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (dto.TenantResponse, error) {
	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	wasActive := tenant.Active
	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Domain != nil {
		tenant.Domain = normalizeDomain(req.Domain)
	}
	if req.Active != nil {
		tenant.Active = *req.Active
	}
	if req.RateLimit != nil {
		tenant.RateLimit = *req.RateLimit
	}
	tenant.UpdatedAt = time.Now()

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.TenantResponse{}, ErrTenantExists
		}
		return dto.TenantResponse{}, err
	}

	if wasActive && !tenant.Active {
		s.onDeactivated(ctx, tenant.ID)
	}

	return dto.FromTenant(tenant), nil
}

func (s *TenantService) onDeactivated(ctx context.Context, tenantID string) {
	revoked, err := s.repo.RefreshToken().RevokeAllForTenant(ctx, tenantID, time.Now())
	if err != nil {
		s.logger.Error("Failed to revoke tokens of deactivated tenant", err, zap.String("tenant_id", tenantID))
	}
	invalidate(ctx, s.cache, tenantID, cache.DomainCategories, cache.DomainProducts, cache.DomainCatalog)
	s.logger.Info("Tenant deactivated", zap.String("tenant_id", tenantID), zap.Int64("revoked_tokens", revoked))
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return []dto.TenantResponse{}, err
	}
	return dto.FromTenants(tenants), nil
}

// FindByID, FindBySlug and FindByDomain implement tenant.Lookup.

func (s *TenantService) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	t, err := s.repo.Tenant().GetByID(ctx, id)
	return t, translateNotFound(err, ErrTenantNotFound)
}

func (s *TenantService) FindBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, err := s.repo.Tenant().GetBySlug(ctx, strings.ToLower(slug))
	return t, translateNotFound(err, ErrTenantNotFound)
}

func (s *TenantService) FindByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	t, err := s.repo.Tenant().GetByDomain(ctx, strings.ToLower(host))
	return t, translateNotFound(err, ErrTenantNotFound)
}

func normalizeDomain(d *string) *string {
	if d == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*d))
	if v == "" {
		return nil
	}
	return &v
}

// validID reports whether id can address a row. Primary keys are UUIDs, so
// anything else is treated as absent before it reaches Postgres.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// translateNotFound maps gorm's not-found error to the domain error and
// passes every other error through.
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
