package repository

import (
	"context"
	"time"

	"github.com/kingrain94/catalog-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByDomain(ctx context.Context, domain string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

// Every method of the scoped repositories below reads the tenant bound to ctx
// and fails with tenant.ErrNoTenantInContext when there is none.

//go:generate mockery --name CategoryRepository --output ../mocks
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	CountByIDs(ctx context.Context, ids []string) (int64, error)
	List(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product, categoryIDs []string) error
	// GetByID includes soft-deleted products.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// GetBySKU includes soft-deleted products, matching the unique index.
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product, relations domain.ProductRelations) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	HardDelete(ctx context.Context, id string) error
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListByEmailAcrossTenants is unscoped; it serves login requests that
	// arrive without any tenant hint.
	ListByEmailAcrossTenants(ctx context.Context, email string) ([]domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name RefreshTokenRepository --output ../mocks
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	// Revoke marks an active token revoked and reports whether this call did it.
	Revoke(ctx context.Context, token string, at time.Time) (bool, error)
	RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error)
	RevokeAllForTenant(ctx context.Context, tenantID string, at time.Time) (int64, error)
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

//go:generate mockery --name ProductIndex --output ../mocks
type ProductIndex interface {
	Index(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, tenantID, productID string) error
	Search(ctx context.Context, query domain.ProductSearchQuery) ([]domain.Product, error)
	CreateIndex(ctx context.Context, tenantID string) error
	DeleteIndex(ctx context.Context, tenantID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Category() CategoryRepository
	Product() ProductRepository
	User() UserRepository
	RefreshToken() RefreshTokenRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() ProductIndex
}
