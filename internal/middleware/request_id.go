package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/catalog-api/internal/utils"
)

const HeaderRequestID = "X-Request-Id"

// RequestID propagates the caller's request id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}
		c.Set(string(utils.RequestIDKey), requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}
