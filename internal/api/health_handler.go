package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
)

//go:generate mockery --name HealthService --output ../mocks
type HealthService interface {
	Check(ctx context.Context) (dto.HealthResponse, int)
}

type HealthHandler struct {
	service HealthService
}

func NewHealthHandler(service HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health godoc
// @Summary Health check
// @Description Report database and cache reachability. A cache outage only degrades the service.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp, status := h.service.Check(c.Request.Context())
	c.JSON(status, resp)
}
