package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

const acmeID = "11111111-1111-1111-1111-111111111111"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func acmeCtx() context.Context {
	return tenant.WithTenant(context.Background(), &domain.Tenant{ID: acmeID, Slug: "acme", Active: true})
}

func TestCategoryRepository_GetByIDIsTenantScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE tenant_id = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "active"}).
			AddRow("cat-1", acmeID, "Pizzas", true))

	category, err := repo.GetByID(acmeCtx(), "cat-1")

	require.NoError(t, err)
	assert.Equal(t, "Pizzas", category.Name)
	assert.Equal(t, acmeID, category.TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_RequiresTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, db)

	_, err := repo.GetByID(context.Background(), "cat-1")

	assert.ErrorIs(t, err, tenant.ErrNoTenantInContext)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteOtherTenantRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, db)

	mock.ExpectExec(`DELETE FROM "categories" WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(acmeID, "cat-beta").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(acmeCtx(), "cat-beta")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_CountByIDsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, db)

	count, err := repo.CountByIDs(acmeCtx(), nil)

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE tenant_id = \$1 AND active = \$2 ORDER BY sort_order ASC,name ASC LIMIT \$3 OFFSET \$4`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name"}))

	active := true
	categories, err := repo.List(acmeCtx(), domain.CategoryFilter{Skip: 10, Take: 5, Active: &active})

	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
