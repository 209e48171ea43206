package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/domain"
)

const janeID = "e0000000-0000-4000-8000-000000000001"

func TestUserRepository_GetByEmailIsScopedAndNormalized(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE tenant_id = \$1 AND email = \$2`).
		WithArgs(acmeID, "jane@acme.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "email", "active"}).
			AddRow(janeID, acmeID, "jane@acme.com", true))

	user, err := repo.GetByEmail(acmeCtx(), "  Jane@ACME.com ")

	require.NoError(t, err)
	assert.Equal(t, janeID, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateOtherTenantRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	mock.ExpectExec(`UPDATE "users" SET .* WHERE tenant_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(acmeCtx(), &domain.User{ID: janeID, Email: "jane@acme.com"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteIsTenantScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	mock.ExpectExec(`DELETE FROM "users" WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(acmeID, janeID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(acmeCtx(), janeID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteOtherTenantRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	mock.ExpectExec(`DELETE FROM "users" WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(acmeID, janeID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(acmeCtx(), janeID)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
