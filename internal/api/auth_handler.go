package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/utils"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (dto.AuthResponse, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	RevokeAllUserTokens(ctx context.Context, userID string) (int64, error)
	RevokeAllTenantTokens(ctx context.Context) (int64, error)
	Me(ctx context.Context, userID string) (dto.UserResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(base *BaseHandler, service AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Register godoc
// @Summary Register a customer
// @Description Create a customer account in the tenant named by tenantSlug and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Sign in
// @Description Exchange email and password for an access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Description Revoke the presented refresh token and issue a new pair
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param body body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Refresh(h.RequestCtx(c), req.RefreshToken)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Sign out
// @Description Revoke the presented refresh token of the calling user
// @Tags auth
// @Accept json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param body body dto.RefreshTokenRequest true "Refresh token"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	if err := h.service.Logout(ctx, userID, req.RefreshToken); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeAll godoc
// @Summary Sign out everywhere
// @Description Revoke every refresh token of the calling user
// @Tags auth
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Success 200 {object} dto.RevokeResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /auth/revoke-all [post]
func (h *AuthHandler) RevokeAll(c *gin.Context) {
	ctx := h.RequestCtx(c)
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	revoked, err := h.service.RevokeAllUserTokens(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevokeResponse{Revoked: revoked})
}

// RevokeTenant godoc
// @Summary Sign out the whole tenant
// @Description Revoke every refresh token issued by the current tenant
// @Tags auth
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Success 200 {object} dto.RevokeResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /auth/revoke-tenant [post]
func (h *AuthHandler) RevokeTenant(c *gin.Context) {
	revoked, err := h.service.RevokeAllTenantTokens(h.RequestCtx(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevokeResponse{Revoked: revoked})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := h.RequestCtx(c)
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	user, err := h.service.Me(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
