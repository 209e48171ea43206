package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/service"
	"github.com/kingrain94/catalog-api/internal/utils"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrTenantContextMissing, http.StatusBadRequest},
	{service.ErrTenantRequired, http.StatusBadRequest},
	{service.ErrUnknownCategory, http.StatusBadRequest},
	{service.ErrInvalidImageType, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},

	{service.ErrTenantNotFound, http.StatusNotFound},
	{service.ErrCategoryNotFound, http.StatusNotFound},
	{service.ErrProductNotFound, http.StatusNotFound},
	{service.ErrUserNotFound, http.StatusNotFound},

	{service.ErrTenantExists, http.StatusConflict},
	{service.ErrCategoryNameExists, http.StatusConflict},
	{service.ErrSKUExists, http.StatusConflict},
	{service.ErrEmailAlreadyExists, http.StatusConflict},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized},
	{service.ErrRefreshTokenExpired, http.StatusUnauthorized},
	{service.ErrUserInactive, http.StatusUnauthorized},
}

// StatusFor maps a service error to its HTTP status; unknown errors are 500.
func StatusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as dto.Error. Internal errors are logged and
// replaced by a generic message.
func writeError(c *gin.Context, log *logger.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		if log != nil {
			log.Error("Request failed", err,
				zap.String("request_id", c.GetString(string(utils.RequestIDKey))),
				zap.String("path", c.Request.URL.Path))
		}
		c.JSON(status, dto.Error{Error: "Internal server error"})
		return
	}
	c.JSON(status, dto.Error{Error: err.Error()})
}
