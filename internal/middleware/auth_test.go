package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/service"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/internal/utils"
)

const (
	acmeID = "11111111-1111-1111-1111-111111111111"
	betaID = "22222222-2222-2222-2222-222222222222"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bindTenant stands in for tenant resolution in tests.
func bindTenant(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != "" {
			t := &domain.Tenant{ID: id, Slug: id[:4], Active: true, RateLimit: 2}
			c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), t))
		}
		c.Next()
	}
}

func issue(t *testing.T, issuer *service.TokenIssuer, tenantID string, roles ...string) string {
	t.Helper()
	raw, err := issuer.Issue(&domain.User{ID: "u-1", TenantID: tenantID, Email: "jane@acme.com", Roles: pq.StringArray(roles)})
	require.NoError(t, err)
	return raw
}

func newAuthRouter(m *AuthMiddleware, tenantID string, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{bindTenant(tenantID), m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(utils.UserIDKey)))
	})
	r.GET("/", handlers...)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", 15*time.Minute)
	m := NewAuthMiddleware(issuer, "")

	tests := []struct {
		name     string
		tenantID string
		header   string
		wantCode int
	}{
		{name: "valid", tenantID: acmeID, header: "Bearer " + issue(t, issuer, acmeID, "customer"), wantCode: http.StatusOK},
		{name: "missing header", tenantID: acmeID, wantCode: http.StatusUnauthorized},
		{name: "bad scheme", tenantID: acmeID, header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", tenantID: acmeID, header: "Bearer not-a-jwt", wantCode: http.StatusUnauthorized},
		{name: "other tenant's token", tenantID: acmeID, header: "Bearer " + issue(t, issuer, betaID, "admin"), wantCode: http.StatusUnauthorized},
		{name: "no tenant bound", header: "Bearer " + issue(t, issuer, acmeID, "admin"), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := serve(newAuthRouter(m, tt.tenantID), req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "u-1", w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", 15*time.Minute)
	m := NewAuthMiddleware(issuer, "")
	r := newAuthRouter(m, acmeID, m.RequireRole(domain.RoleAdmin, domain.RoleStaff))

	tests := []struct {
		name     string
		roles    []string
		wantCode int
	}{
		{name: "admin", roles: []string{"admin"}, wantCode: http.StatusOK},
		{name: "staff", roles: []string{"customer", "staff"}, wantCode: http.StatusOK},
		{name: "customer", roles: []string{"customer"}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+issue(t, issuer, acmeID, tt.roles...))

			w := serve(r, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuthentication(t *testing.T) {
	m := NewAuthMiddleware(service.NewTokenIssuer("secret", time.Minute), "")
	r := gin.New()
	r.GET("/", m.RequireRole(domain.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		provided string
		wantCode int
	}{
		{name: "disabled", key: "", provided: "anything", wantCode: http.StatusForbidden},
		{name: "missing", key: "k3y", wantCode: http.StatusUnauthorized},
		{name: "wrong", key: "k3y", provided: "nope", wantCode: http.StatusUnauthorized},
		{name: "correct", key: "k3y", provided: "k3y", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(service.NewTokenIssuer("secret", time.Minute), tt.key)
			r := gin.New()
			r.GET("/admin", m.AdminKey(), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/admin", nil)
			if tt.provided != "" {
				req.Header.Set(HeaderAdminKey, tt.provided)
			}

			w := serve(r, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
