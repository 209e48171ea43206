package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

var productUpdateColumns = []string{
	"name", "description", "sku", "price", "tax_rate", "stock", "images", "active", "updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProductRepository(writerDB, readerDB *gorm.DB) *ProductRepository {
	return &ProductRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts the product, its variants, addons and category links in a
// single transaction.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product, categoryIDs []string) error {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Images == nil {
		product.Images = pq.StringArray{}
	}
	product.TenantID = tenantID

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		if err := createVariants(tx, product.ID, product.Variants); err != nil {
			return err
		}
		if err := createAddons(tx, product.ID, product.Addons); err != nil {
			return err
		}
		return linkCategories(tx, product.ID, categoryIDs)
	})
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := withRelations(db.Unscoped()).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := db.Unscoped().First(&product, "sku = ?", sku).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + likeEscaper.Replace(filter.Search) + "%"
		db = db.Where("(name ILIKE ? OR description ILIKE ? OR sku ILIKE ?)", like, like, like)
	}
	if filter.CategoryID != "" {
		db = db.Where("EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = products.id AND pc.category_id = ?)", filter.CategoryID)
	}
	db = paginate(db, filter.Skip, filter.Take)

	var products []domain.Product
	if err := withRelations(db).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update writes the scalar columns and replaces every relation supplied in
// relations (delete all, then insert). Child ids are regenerated.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product, relations domain.ProductRelations) error {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return err
	}
	if product.Images == nil {
		product.Images = pq.StringArray{}
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(product).
			Where("tenant_id = ?", tenantID).
			Select(productUpdateColumns).
			Omit(clause.Associations).
			Updates(product)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if relations.CategoryIDs != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.ProductCategory{}).Error; err != nil {
				return err
			}
			if err := linkCategories(tx, product.ID, *relations.CategoryIDs); err != nil {
				return err
			}
		}
		if relations.Variants != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.Variant{}).Error; err != nil {
				return err
			}
			if err := createVariants(tx, product.ID, *relations.Variants); err != nil {
				return err
			}
		}
		if relations.Addons != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.Addon{}).Error; err != nil {
				return err
			}
			if err := createAddons(tx, product.ID, *relations.Addons); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProductRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return err
	}

	result := db.Model(&domain.Product{}).Where("id = ?", id).UpdateColumn("deleted_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) HardDelete(ctx context.Context, id string) error {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Unscoped().Model(&domain.Product{}).
			Where("tenant_id = ? AND id = ?", tenantID, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		for _, child := range []any{&domain.ProductCategory{}, &domain.Variant{}, &domain.Addon{}} {
			if err := tx.Where("product_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Where("tenant_id = ?", tenantID).Delete(&domain.Product{}, "id = ?", id).Error
	})
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Addons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}

func createVariants(tx *gorm.DB, productID string, variants []domain.Variant) error {
	if len(variants) == 0 {
		return nil
	}
	for i := range variants {
		variants[i].ID = uuid.New().String()
		variants[i].ProductID = productID
	}
	return tx.Create(&variants).Error
}

func createAddons(tx *gorm.DB, productID string, addons []domain.Addon) error {
	if len(addons) == 0 {
		return nil
	}
	for i := range addons {
		addons[i].ID = uuid.New().String()
		addons[i].ProductID = productID
	}
	return tx.Create(&addons).Error
}

func linkCategories(tx *gorm.DB, productID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]domain.ProductCategory, 0, len(categoryIDs))
	seen := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, domain.ProductCategory{ProductID: productID, CategoryID: id})
	}
	return tx.Create(&links).Error
}
