package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/utils"
)

//go:generate mockery --name CatalogService --output ../mocks
type CatalogService interface {
	Storefront(ctx context.Context, query domain.CatalogQuery) (dto.CatalogResponse, error)
}

type CatalogHandler struct {
	*BaseHandler
	service CatalogService
}

func NewCatalogHandler(base *BaseHandler, service CatalogService) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// GetCatalog godoc
// @Summary Storefront catalog
// @Description Active products grouped by active category. Products without a category are listed as uncategorized.
// @Tags catalog
// @Produce json
// @Param X-Tenant-Slug header string false "Tenant slug"
// @Param skip query int false "Products to skip"
// @Param take query int false "Products to return (max 100)"
// @Success 200 {object} dto.CatalogResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	skip, take, err := utils.ParsePagination(c.Query("skip"), c.Query("take"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	catalog, err := h.service.Storefront(h.RequestCtx(c), domain.CatalogQuery{Skip: skip, Take: take})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}
