package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/domain"
)

// RefreshTokenRepository is keyed by the opaque token value, which is
// globally unique; callers compare the stored TenantID with the bound tenant.
type RefreshTokenRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRefreshTokenRepository(writerDB, readerDB *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(token).Error
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var refreshToken domain.RefreshToken
	err := r.writerDB.WithContext(ctx).
		Preload("User").
		First(&refreshToken, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string, at time.Time) (bool, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.RefreshToken{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at)
	return result.RowsAffected, result.Error
}

func (r *RefreshTokenRepository) RevokeAllForTenant(ctx context.Context, tenantID string, at time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.RefreshToken{}).
		Where("tenant_id = ? AND revoked_at IS NULL", tenantID).
		Update("revoked_at", at)
	return result.RowsAffected, result.Error
}

// DeleteStale removes tokens that expired or were revoked before the cutoff.
func (r *RefreshTokenRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("expires_at < ? OR revoked_at < ?", before, before).
		Delete(&domain.RefreshToken{})
	return result.RowsAffected, result.Error
}
