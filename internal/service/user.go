package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

const passwordHashCost = 12

type UserService struct {
	repo repository.Repository
	cost int
}

func NewUserService(repo repository.Repository) *UserService {
	return &UserService{
		repo: repo,
		cost: passwordHashCost,
	}
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	user, err := s.create(ctx, req)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.FromUser(user), nil
}

// create resolves the owning tenant, binds it to ctx for the scoped writes
// and stores the user. With a tenant already bound (tenant-scoped admin
// routes) the slug may be omitted but must not name another tenant.
func (s *UserService) create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	owner, err := s.resolveTenant(ctx, req.TenantSlug)
	if err != nil {
		return nil, err
	}
	ctx = tenant.WithTenant(ctx, owner)

	roles, err := normalizeRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Roles:        roles,
		Active:       true,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) resolveTenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	bound, hasBound := tenant.FromContext(ctx)
	slug = strings.ToLower(strings.TrimSpace(slug))

	if slug == "" {
		if !hasBound {
			return nil, ErrTenantRequired
		}
		return bound, nil
	}
	if hasBound {
		if bound.Slug != slug {
			return nil, ErrTenantNotFound
		}
		return bound, nil
	}

	owner, err := s.repo.Tenant().GetBySlug(ctx, slug)
	if err != nil {
		return nil, translateNotFound(err, ErrTenantNotFound)
	}
	// An inactive tenant is indistinguishable from an unknown one.
	if !owner.Active {
		return nil, ErrTenantNotFound
	}
	return owner, nil
}

func (s *UserService) FindAll(ctx context.Context, filter domain.UserFilter) ([]dto.UserResponse, error) {
	users, err := s.repo.User().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (dto.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.FromUser(user), nil
}

// Update applies the supplied fields. Deactivating a user revokes their
// refresh tokens so no new access token can be minted.
func (s *UserService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	wasActive := user.Active

	if req.Email != nil && !strings.EqualFold(*req.Email, user.Email) {
		existing, err := s.repo.User().GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != id {
			return dto.UserResponse{}, ErrEmailAlreadyExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return dto.UserResponse{}, err
		}
		user.PasswordHash = hash
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Roles != nil {
		roles, err := normalizeRoles(*req.Roles)
		if err != nil {
			return dto.UserResponse{}, err
		}
		user.Roles = roles
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User().Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.UserResponse{}, ErrEmailAlreadyExists
		}
		return dto.UserResponse{}, translateNotFound(err, ErrUserNotFound)
	}

	if wasActive && !user.Active {
		if _, err := s.repo.RefreshToken().RevokeAllForUser(ctx, user.ID, time.Now()); err != nil {
			return dto.UserResponse{}, fmt.Errorf("failed to revoke sessions: %w", err)
		}
	}

	return dto.FromUser(user), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.User().Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrUserNotFound)
	}
	return nil
}

// ValidatePassword reports whether password matches the stored bcrypt hash.
func (s *UserService) ValidatePassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

func (s *UserService) get(ctx context.Context, id string) (*domain.User, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrUserNotFound
	}

	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrUserNotFound)
	}
	if user.TenantID != tenantID {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeRoles(roles []string) (pq.StringArray, error) {
	if len(roles) == 0 {
		return pq.StringArray{string(domain.RoleCustomer)}, nil
	}
	out := make(pq.StringArray, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		if !domain.IsValidRole(r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, r)
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}
