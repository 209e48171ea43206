package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/utils"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

type BaseHandler struct {
	logger *logger.Logger
}

func NewBaseHandler(logger *logger.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// RequestCtx returns the request context, which carries the bound tenant,
// enriched with the gin keys set by the middleware chain.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

func (h *BaseHandler) Error(c *gin.Context, err error) {
	var log *logger.Logger
	if h != nil {
		log = h.logger
	}
	writeError(c, log, err)
}
