package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/service"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/internal/utils"
)

const HeaderAdminKey = "X-Admin-Key"

type AuthMiddleware struct {
	issuer   *service.TokenIssuer
	adminKey string
}

func NewAuthMiddleware(issuer *service.TokenIssuer, adminKey string) *AuthMiddleware {
	return &AuthMiddleware{
		issuer:   issuer,
		adminKey: adminKey,
	}
}

// JWTAuth verifies the bearer token. It must run after tenant resolution:
// a token is only accepted by the tenant that issued it.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid authorization header format"})
			return
		}

		claims, err := m.issuer.Parse(bearerToken[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid or expired token"})
			return
		}

		tenantID, err := tenant.IDFromContext(c.Request.Context())
		if err != nil || claims.TenantID != tenantID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Token was not issued for this tenant"})
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Set(string(utils.UserIDKey), claims.Subject)
		c.Set(string(utils.RolesKey), claims.Roles)
		c.Next()
	}
}

// RequireRole lets the request through when the user has any of roles.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(string(utils.RolesKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
			return
		}

		userRoles, ok := value.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "Invalid claims type"})
			return
		}

		if !domain.HasAnyRole(userRoles, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// AdminKey guards platform administration routes with a static key. With no
// key configured the routes are closed.
func (m *AuthMiddleware) AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.adminKey == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Admin API is disabled"})
			return
		}

		provided := c.GetHeader(HeaderAdminKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid admin key"})
			return
		}

		c.Next()
	}
}
