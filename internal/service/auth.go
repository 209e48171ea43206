package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

type AuthService struct {
	repo       repository.Repository
	users      *UserService
	issuer     *TokenIssuer
	refreshTTL time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

func NewAuthService(repo repository.Repository, users *UserService, issuer *TokenIssuer, refreshTTL time.Duration, logger *logger.Logger) *AuthService {
	return &AuthService{
		repo:       repo,
		users:      users,
		issuer:     issuer,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates a customer account in the tenant named by the request
// and signs it in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	user, err := s.users.create(ctx, req.ToCreateUserRequest())
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return s.issueTokens(ctx, user)
}

// Login authenticates by email and password. Without a tenant slug the
// email must identify exactly one account across all tenants.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.findLoginUser(ctx, req)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	if !s.users.ValidatePassword(req.Password, user.PasswordHash) {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}
	if !user.Active {
		return dto.AuthResponse{}, ErrUserInactive
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) findLoginUser(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	slug := strings.ToLower(strings.TrimSpace(req.TenantSlug))
	if slug != "" {
		owner, err := s.repo.Tenant().GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		if !owner.Active {
			return nil, ErrInvalidCredentials
		}

		user, err := s.repo.User().GetByEmail(tenant.WithTenant(ctx, owner), req.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		user.Tenant = owner
		return user, nil
	}

	users, err := s.repo.User().ListByEmailAcrossTenants(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, ErrInvalidCredentials
	case 1:
		user := &users[0]
		if user.Tenant == nil || !user.Tenant.Active {
			return nil, ErrInvalidCredentials
		}
		return user, nil
	default:
		return nil, ErrTenantRequired
	}
}

// Refresh rotates a refresh token. The token must have been issued by the
// tenant bound to ctx; it is revoked atomically so a replayed token loses.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (dto.AuthResponse, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	record, err := s.repo.RefreshToken().GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, ErrInvalidRefreshToken
		}
		return dto.AuthResponse{}, err
	}
	if record.TenantID != tenantID || record.IsRevoked() {
		return dto.AuthResponse{}, ErrInvalidRefreshToken
	}
	if record.IsExpired(s.now()) {
		return dto.AuthResponse{}, ErrRefreshTokenExpired
	}
	if record.User == nil || !record.User.Active {
		return dto.AuthResponse{}, ErrUserInactive
	}

	revoked, err := s.repo.RefreshToken().Revoke(ctx, refreshToken, s.now())
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if !revoked {
		s.logger.Warn("Refresh token reused concurrently",
			zap.String("tenant_id", tenantID),
			zap.String("user_id", record.UserID))
		return dto.AuthResponse{}, ErrInvalidRefreshToken
	}

	return s.issueTokens(ctx, record.User)
}

// Logout revokes one refresh token of the calling user. Logging out twice
// succeeds.
func (s *AuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.repo.RefreshToken().GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	if record.TenantID != tenantID || record.UserID != userID {
		return ErrInvalidRefreshToken
	}
	if record.IsRevoked() {
		return nil
	}

	_, err = s.repo.RefreshToken().Revoke(ctx, refreshToken, s.now())
	return err
}

// RevokeAllUserTokens signs a user of the bound tenant out everywhere.
func (s *AuthService) RevokeAllUserTokens(ctx context.Context, userID string) (int64, error) {
	if _, err := s.users.get(ctx, userID); err != nil {
		return 0, err
	}
	return s.repo.RefreshToken().RevokeAllForUser(ctx, userID, s.now())
}

// RevokeAllTenantTokens signs out every user of the bound tenant.
func (s *AuthService) RevokeAllTenantTokens(ctx context.Context) (int64, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	revoked, err := s.repo.RefreshToken().RevokeAllForTenant(ctx, tenantID, s.now())
	if err != nil {
		return 0, err
	}
	s.logger.Info("Revoked all tenant sessions", zap.String("tenant_id", tenantID), zap.Int64("revoked", revoked))
	return revoked, nil
}

// Me returns the calling user's profile.
func (s *AuthService) Me(ctx context.Context, userID string) (dto.UserResponse, error) {
	user, err := s.users.get(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if !user.Active {
		return dto.UserResponse{}, ErrUserInactive
	}
	return dto.FromUser(user), nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (dto.AuthResponse, error) {
	accessToken, err := s.issuer.Issue(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return dto.AuthResponse{}, err
	}

	record := &domain.RefreshToken{
		TenantID:  user.TenantID,
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.now().Add(s.refreshTTL),
	}
	if err := s.repo.RefreshToken().Create(ctx, record); err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.issuer.AccessTTL().Seconds()),
		User: dto.AuthUserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Roles:     []string(user.Roles),
		},
	}, nil
}
