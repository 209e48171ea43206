package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/utils"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	FindAll(ctx context.Context, filter domain.UserFilter) ([]dto.UserResponse, error)
	FindByID(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name SessionRevoker --output ../mocks
type SessionRevoker interface {
	RevokeAllUserTokens(ctx context.Context, userID string) (int64, error)
}

type UserHandler struct {
	*BaseHandler
	service  UserService
	sessions SessionRevoker
}

func NewUserHandler(base *BaseHandler, service UserService, sessions SessionRevoker) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service, sessions: sessions}
}

// CreateUser godoc
// @Summary Create a user
// @Description Create a user in the current tenant. Emails are unique per tenant.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param body body dto.CreateUserRequest true "User object"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	user, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param skip query int false "Rows to skip"
// @Param take query int false "Rows to return (max 100)"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, take, err := utils.ParsePagination(c.Query("skip"), c.Query("take"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	active, err := utils.ParseOptionalBool(c.Query("active"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	users, err := h.service.FindAll(h.RequestCtx(c), domain.UserFilter{Skip: skip, Take: take, Active: active})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.FindByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Deactivating a user revokes all of their sessions
// @Tags users
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "User ID"
// @Param body body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	user, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "User ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeUserSessions godoc
// @Summary Revoke a user's sessions
// @Tags users
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "User ID"
// @Success 200 {object} dto.RevokeResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /users/{id}/revoke-sessions [post]
func (h *UserHandler) RevokeUserSessions(c *gin.Context) {
	revoked, err := h.sessions.RevokeAllUserTokens(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevokeResponse{Revoked: revoked})
}
