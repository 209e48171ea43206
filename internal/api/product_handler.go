package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/utils"
)

//go:generate mockery --name ProductService --output ../mocks
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	FindAll(ctx context.Context, filter domain.ProductFilter) ([]dto.ProductResponse, error)
	FindByID(ctx context.Context, id string) (dto.ProductResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id string, hard bool) (dto.ProductResponse, error)
	AddImage(ctx context.Context, id, filename, contentType string, body io.Reader) (dto.ImageUploadResponse, error)
	Search(ctx context.Context, query domain.ProductSearchQuery) ([]dto.ProductResponse, error)
}

type ProductHandler struct {
	*BaseHandler
	service       ProductService
	maxUploadSize int64
}

func NewProductHandler(base *BaseHandler, service ProductService, maxUploadSize int64) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service, maxUploadSize: maxUploadSize}
}

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product with variants, addons and category links. SKUs are unique per tenant.
// @Tags products
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param body body dto.CreateProductRequest true "Product object"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	product, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts godoc
// @Summary List products
// @Description List non-deleted products, newest first
// @Tags products
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param skip query int false "Rows to skip"
// @Param take query int false "Rows to return (max 100)"
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Case-insensitive match on name, description or SKU"
// @Param categoryId query string false "Only products linked to this category"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
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

	filter := domain.ProductFilter{
		Skip:       skip,
		Take:       take,
		Active:     active,
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
	}

	products, err := h.service.FindAll(h.RequestCtx(c), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts godoc
// @Summary Full-text product search
// @Description Search active products of the current tenant in the search index
// @Tags products
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param q query string false "Search text"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	page, pageSize, err := utils.ParsePage(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	products, err := h.service.Search(h.RequestCtx(c), domain.ProductSearchQuery{
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product
// @Description Get a product by id, including soft-deleted ones
// @Tags products
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.FindByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update scalar fields; categoryIds, variants and addons replace the existing set when present
// @Tags products
// @Accept json
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Product ID"
// @Param body body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	product, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Soft delete by default; hard=true removes the product permanently
// @Tags products
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Product ID"
// @Param hard query bool false "Delete permanently"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	hard, err := utils.ParseOptionalBool(c.Query("hard"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	product, err := h.service.Delete(h.RequestCtx(c), c.Param("id"), hard != nil && *hard)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UploadImage godoc
// @Summary Upload a product image
// @Description Store an image in object storage and append its URL to the product
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param id path string true "Product ID"
// @Param image formData file true "Image file"
// @Success 201 {object} dto.ImageUploadResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 413 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /products/{id}/images [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "image file is required"})
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "image is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "failed to read image"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	resp, err := h.service.AddImage(h.RequestCtx(c), c.Param("id"), fileHeader.Filename, contentType, file)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
