package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

var categoryUpdateColumns = []string{"name", "description", "image", "sort_order", "active", "updated_at"}

type CategoryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCategoryRepository(writerDB, readerDB *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return err
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.TenantID = tenantID

	return r.writerDB.WithContext(ctx).Create(category).Error
}

// GetByID reads from the writer so uniqueness checks and re-reads after a
// write never observe replica lag.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := db.First(&category, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&domain.Category{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CategoryRepository) List(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	db = paginate(db, filter.Skip, filter.Take)

	var categories []domain.Category
	if err := db.Order("sort_order ASC").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}

	result := db.Model(category).Select(categoryUpdateColumns).Updates(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}

	result := db.Delete(&domain.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
