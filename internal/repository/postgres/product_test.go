package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

const (
	productID  = "d0000000-0000-4000-8000-000000000001"
	pizzasID   = "c0000000-0000-4000-8000-000000000001"
	drinksID   = "c0000000-0000-4000-8000-000000000002"
	variantRef = "a0000000-0000-4000-8000-000000000001"
)

func TestProductRepository_CreateIsOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(productID))
	mock.ExpectQuery(`INSERT INTO "product_variants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(variantRef))
	mock.ExpectExec(`INSERT INTO "product_categories" \("product_id","category_id"\)`).
		WithArgs(productID, pizzasID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	product := &domain.Product{
		ID:       productID,
		Name:     "Margherita",
		SKU:      "A1",
		Price:    9.9,
		Active:   true,
		Variants: []domain.Variant{{Name: "Large", PriceDelta: 2}},
	}
	err := repo.Create(acmeCtx(), product, []string{pizzasID, pizzasID})

	require.NoError(t, err)
	assert.Equal(t, acmeID, product.TenantID)
	assert.Equal(t, productID, product.Variants[0].ProductID)
	assert.NotNil(t, product.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateRollsBackOnLinkFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)
	linkErr := errors.New("foreign key violation")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(productID))
	mock.ExpectExec(`INSERT INTO "product_categories"`).
		WillReturnError(linkErr)
	mock.ExpectRollback()

	err := repo.Create(acmeCtx(), &domain.Product{ID: productID, Name: "Margherita", SKU: "A1"}, []string{pizzasID})

	assert.ErrorIs(t, err, linkErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateReplacesRelationsWholesale(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET .* WHERE tenant_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "product_categories" WHERE product_id = \$1`).
		WithArgs(productID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "product_categories" \("product_id","category_id"\) VALUES \(\$1,\$2\),\(\$3,\$4\)`).
		WithArgs(productID, pizzasID, productID, drinksID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "product_variants" WHERE product_id = \$1`).
		WithArgs(productID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	categories := []string{pizzasID, drinksID}
	variants := []domain.Variant{}
	err := repo.Update(acmeCtx(), &domain.Product{ID: productID, Name: "Margherita", SKU: "A1"}, domain.ProductRelations{
		CategoryIDs: &categories,
		Variants:    &variants,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "addons are untouched when not supplied")
}

func TestProductRepository_UpdateOtherTenantRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET .* WHERE tenant_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	categories := []string{pizzasID}
	err := repo.Update(acmeCtx(), &domain.Product{ID: productID, Name: "Margherita"}, domain.ProductRelations{
		CategoryIDs: &categories,
	})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_SoftDeleteIsTenantScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(`UPDATE "products" SET "deleted_at"=\$1 WHERE tenant_id = \$2 AND id = \$3`).
		WithArgs(at, acmeID, productID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDelete(acmeCtx(), productID, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_SoftDeleteMissingIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)

	mock.ExpectExec(`UPDATE "products" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(acmeCtx(), productID, time.Now())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_HardDeleteOtherTenantRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(acmeID, productID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.HardDelete(acmeCtx(), productID)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_HardDeleteRemovesChildrenFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(acmeID, productID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	for _, table := range []string{"product_categories", "product_variants", "product_addons"} {
		mock.ExpectExec(`DELETE FROM "` + table + `" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(`DELETE FROM "products" WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(acmeID, productID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.HardDelete(acmeCtx(), productID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_WritesRequireTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db, db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Create(ctx, &domain.Product{}, nil), tenant.ErrNoTenantInContext)
	assert.ErrorIs(t, repo.Update(ctx, &domain.Product{ID: productID}, domain.ProductRelations{}), tenant.ErrNoTenantInContext)
	assert.ErrorIs(t, repo.SoftDelete(ctx, productID, time.Now()), tenant.ErrNoTenantInContext)
	assert.ErrorIs(t, repo.HardDelete(ctx, productID), tenant.ErrNoTenantInContext)
	assert.NoError(t, mock.ExpectationsWereMet())
}
