package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/tenant"
)

// getTenantScope returns a scoped database instance with tenant isolation
func getTenantScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// paginate applies skip/take when they are set
func paginate(db *gorm.DB, skip, take int) *gorm.DB {
	if skip > 0 {
		db = db.Offset(skip)
	}
	if take > 0 {
		db = db.Limit(take)
	}
	return db
}
