package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

var userUpdateColumns = []string{
	"email", "password_hash", "first_name", "last_name", "phone", "roles", "active", "updated_at",
}

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.TenantID = tenantID
	user.Email = normalizeEmail(user.Email)

	return r.writerDB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := db.First(&user, "email = ?", normalizeEmail(email)).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListByEmailAcrossTenants(ctx context.Context, email string) ([]domain.User, error) {
	var users []domain.User
	err := r.writerDB.WithContext(ctx).
		Preload("Tenant").
		Where("email = ?", normalizeEmail(email)).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	db = paginate(db, filter.Skip, filter.Take)

	var users []domain.User
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}
	user.Email = normalizeEmail(user.Email)

	result := db.Model(user).Select(userUpdateColumns).Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&domain.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
