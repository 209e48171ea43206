package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/internal/utils"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

type TenantMiddleware struct {
	resolver *tenant.Resolver
	logger   *logger.Logger
}

func NewTenantMiddleware(resolver *tenant.Resolver, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve binds the request's tenant to the request context. Public paths
// pass through unbound; anything else without an active tenant is rejected.
func (m *TenantMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.resolver.IsPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		t, strategy, err := m.resolver.Resolve(c.Request.Context(), c.Request)
		if err != nil {
			if errors.Is(err, tenant.ErrTenantUnresolved) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Tenant not found or inactive"})
				return
			}
			m.logger.Error("Tenant resolution failed", err, zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
			return
		}

		c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), t))
		c.Set(string(utils.TenantIDKey), t.ID)
		m.logger.Debug("Tenant resolved",
			zap.String("tenant_id", t.ID),
			zap.String("strategy", strategy),
			zap.String("request_id", c.GetString(string(utils.RequestIDKey))))

		c.Next()
	}
}
