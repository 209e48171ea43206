package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/middleware"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

// maxRequestOverhead leaves room for multipart framing around an upload.
const maxRequestOverhead = 1 << 20

type Services struct {
	Tenant   TenantService
	Category CategoryService
	Product  ProductService
	Catalog  CatalogService
	User     UserService
	Auth     AuthService
	Health   HealthService
	Events   EventSubscriber
}

type Middleware struct {
	Tenant     *middleware.TenantMiddleware
	Auth       *middleware.AuthMiddleware
	RateLimit  *middleware.RateLimitMiddleware
	Validation *middleware.ValidationMiddleware
}

type Server struct {
	tenant     *TenantHandler
	category   *CategoryHandler
	product    *ProductHandler
	catalog    *CatalogHandler
	user       *UserHandler
	auth       *AuthHandler
	health     *HealthHandler
	websocket  *WebSocketHandler
	mw         Middleware
	globalRate int
	maxUpload  int64
}

func NewServer(services Services, mw Middleware, logger *logger.Logger, globalRateLimit int, maxUploadSize int64) *Server {
	base := NewBaseHandler(logger)
	return &Server{
		tenant:     NewTenantHandler(base, services.Tenant),
		category:   NewCategoryHandler(base, services.Category),
		product:    NewProductHandler(base, services.Product, maxUploadSize),
		catalog:    NewCatalogHandler(base, services.Catalog),
		user:       NewUserHandler(base, services.User, services.Auth),
		auth:       NewAuthHandler(base, services.Auth),
		health:     NewHealthHandler(services.Health),
		websocket:  NewWebSocketHandler(logger, services.Events),
		mw:         mw,
		globalRate: globalRateLimit,
		maxUpload:  maxUploadSize,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.mw.Validation.BlockSuspiciousPatterns())
	api.Use(s.mw.Validation.SanitizeInput())
	api.Use(s.mw.Validation.ValidateRequestSize(s.maxUpload + maxRequestOverhead))
	api.Use(s.mw.Validation.ValidateContentType("application/json", "multipart/form-data"))

	api.Use(s.mw.RateLimit.GlobalRateLimit(s.globalRate))

	// Everything below runs with the tenant bound, except public paths.
	api.Use(s.mw.Tenant.Resolve())
	api.Use(s.mw.RateLimit.TenantRateLimit())

	jwt := s.mw.Auth.JWTAuth()
	editors := s.mw.Auth.RequireRole(domain.RoleAdmin, domain.RoleStaff)
	admins := s.mw.Auth.RequireRole(domain.RoleAdmin)

	api.GET("/health", s.health.Health)

	admin := api.Group("/admin", s.mw.Auth.AdminKey())
	{
		admin.POST("/tenants", s.tenant.CreateTenant)
		admin.GET("/tenants", s.tenant.ListTenants)
		admin.GET("/tenants/:id", s.tenant.GetTenant)
		admin.PUT("/tenants/:id", s.tenant.UpdateTenant)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.auth.Register)
		auth.POST("/login", s.auth.Login)
		auth.POST("/refresh", s.auth.Refresh)
		auth.POST("/logout", jwt, s.auth.Logout)
		auth.POST("/revoke-all", jwt, s.auth.RevokeAll)
		auth.POST("/revoke-tenant", jwt, admins, s.auth.RevokeTenant)
		auth.GET("/me", jwt, s.auth.Me)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("", s.catalog.GetCatalog)
		catalog.GET("/stream", s.websocket.HandleWebSocket)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", s.category.ListCategories)
		categories.GET("/:id", s.category.GetCategory)
		categories.POST("", jwt, editors, s.category.CreateCategory)
		categories.PUT("/:id", jwt, editors, s.category.UpdateCategory)
		categories.DELETE("/:id", jwt, editors, s.category.DeleteCategory)
	}

	products := api.Group("/products")
	{
		products.GET("", s.product.ListProducts)
		products.GET("/search", s.product.SearchProducts)
		products.GET("/:id", s.product.GetProduct)
		products.POST("", jwt, editors, s.product.CreateProduct)
		products.PUT("/:id", jwt, editors, s.product.UpdateProduct)
		products.DELETE("/:id", jwt, editors, s.product.DeleteProduct)
		products.POST("/:id/images", jwt, editors, s.product.UploadImage)
	}

	users := api.Group("/users", jwt, admins)
	{
		users.POST("", s.user.CreateUser)
		users.GET("", s.user.ListUsers)
		users.GET("/:id", s.user.GetUser)
		users.PUT("/:id", s.user.UpdateUser)
		users.DELETE("/:id", s.user.DeleteUser)
		users.POST("/:id/revoke-sessions", s.user.RevokeUserSessions)
	}
}

// StartWebSocketHub starts the hub that fans catalog events out to clients.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
