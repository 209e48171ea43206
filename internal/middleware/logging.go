package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/internal/utils"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

// RequestLogger logs one line per request once the handler chain is done.
func RequestLogger(logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(string(utils.RequestIDKey))),
		}
		if tenantID := c.GetString(string(utils.TenantIDKey)); tenantID != "" {
			fields = append(fields, zap.String("tenant_id", tenantID))
		}

		switch {
		case status >= 500:
			logger.Logger.Error("Request failed", fields...)
		case status >= 400:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request served", fields...)
		}
	}
}
