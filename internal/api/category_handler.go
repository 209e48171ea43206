package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/utils"
)

//go:generate mockery --name CategoryService --output ../mocks
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	FindAll(ctx context.Context, filter domain.CategoryFilter) ([]dto.CategoryResponse, error)
	FindByID(ctx context.Context, id string) (dto.CategoryResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type CategoryHandler struct {
	*BaseHandler
	service CategoryService
}

func NewCategoryHandler(base *BaseHandler, service CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category in the current tenant. Names are unique per tenant.
// @Tags categories
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param body body dto.CreateCategoryRequest true "Category object"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	category, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories godoc
// @Summary List categories
// @Description List the current tenant's categories ordered by sort order
// @Tags categories
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param skip query int false "Rows to skip"
// @Param take query int false "Rows to return (max 100)"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
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

	categories, err := h.service.FindAll(h.RequestCtx(c), domain.CategoryFilter{Skip: skip, Take: take, Active: active})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.service.FindByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Category ID"
// @Param body body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	category, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Category ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
