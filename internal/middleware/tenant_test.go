package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/internal/utils"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

func newTenantRouter(lookup tenant.Lookup) *gin.Engine {
	resolver := tenant.NewResolver(lookup, []string{"/health", "/admin"})
	m := NewTenantMiddleware(resolver, logger.NewNop())

	r := gin.New()
	r.Use(m.Resolve())
	handler := func(c *gin.Context) {
		id, err := tenant.IDFromContext(c.Request.Context())
		if err != nil {
			c.String(http.StatusOK, "unbound")
			return
		}
		c.String(http.StatusOK, id+"|"+c.GetString(string(utils.TenantIDKey)))
	}
	r.GET("/health", handler)
	r.GET("/products", handler)
	return r
}

func TestTenantMiddleware_BindsResolvedTenant(t *testing.T) {
	lookup := mocks.NewLookup(t)
	lookup.On("FindBySlug", mock.Anything, "acme").Return(&domain.Tenant{ID: acmeID, Slug: "acme", Active: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(tenant.HeaderTenantSlug, "acme")
	w := serve(newTenantRouter(lookup), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, acmeID+"|"+acmeID, w.Body.String())
}

func TestTenantMiddleware_Unresolved(t *testing.T) {
	lookup := mocks.NewLookup(t)
	lookup.On("FindBySlug", mock.Anything, "ghost").Return(nil, tenant.ErrTenantNotFound)
	lookup.On("FindByDomain", mock.Anything, "localhost").Return(nil, tenant.ErrTenantNotFound)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Host = "localhost:8080"
	req.Header.Set(tenant.HeaderTenantSlug, "ghost")
	w := serve(newTenantRouter(lookup), req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Tenant not found or inactive")
}

func TestTenantMiddleware_InactiveTenant(t *testing.T) {
	lookup := mocks.NewLookup(t)
	lookup.On("FindBySlug", mock.Anything, "acme").Return(&domain.Tenant{ID: acmeID, Slug: "acme"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(tenant.HeaderTenantSlug, "acme")
	w := serve(newTenantRouter(lookup), req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantMiddleware_StoreFailure(t *testing.T) {
	lookup := mocks.NewLookup(t)
	lookup.On("FindBySlug", mock.Anything, "acme").Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(tenant.HeaderTenantSlug, "acme")
	w := serve(newTenantRouter(lookup), req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestTenantMiddleware_PublicPathSkipsResolution(t *testing.T) {
	lookup := mocks.NewLookup(t)

	w := serve(newTenantRouter(lookup), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unbound", w.Body.String())
}
