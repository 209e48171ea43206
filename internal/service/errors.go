package service

import (
	"errors"

	"github.com/kingrain94/catalog-api/internal/tenant"
)

var (
	// ErrTenantContextMissing means a scoped operation ran without a bound
	// tenant: a middleware ordering bug, never a client mistake to retry.
	ErrTenantContextMissing = tenant.ErrNoTenantInContext

	// Tenant errors
	ErrTenantNotFound = tenant.ErrTenantNotFound
	ErrTenantExists   = errors.New("tenant already exists")
	ErrTenantRequired = errors.New("tenant could not be determined")

	// Category errors
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists in this tenant")

	// Product errors
	ErrProductNotFound  = errors.New("product not found")
	ErrSKUExists        = errors.New("product SKU already exists in this tenant")
	ErrUnknownCategory  = errors.New("one or more categories do not exist in this tenant")
	ErrInvalidImageType = errors.New("unsupported image type")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered in this tenant")
	ErrInvalidRole        = errors.New("invalid role")

	// Auth errors
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrUserInactive        = errors.New("user account is inactive")
)
