package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/repository"
)

type postgresRepository struct {
	tenantRepo       repository.TenantRepository
	categoryRepo     repository.CategoryRepository
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		tenantRepo:       NewTenantRepository(writerDB, readerDB),
		categoryRepo:     NewCategoryRepository(writerDB, readerDB),
		productRepo:      NewProductRepository(writerDB, readerDB),
		userRepo:         NewUserRepository(writerDB, readerDB),
		refreshTokenRepo: NewRefreshTokenRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Category() repository.CategoryRepository {
	return r.categoryRepo
}

func (r *postgresRepository) Product() repository.ProductRepository {
	return r.productRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) RefreshToken() repository.RefreshTokenRepository {
	return r.refreshTokenRepo
}
