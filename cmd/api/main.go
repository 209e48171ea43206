package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/catalog-api/docs"
	"github.com/kingrain94/catalog-api/internal/api"
	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/middleware"
	"github.com/kingrain94/catalog-api/internal/repository/composite"
	"github.com/kingrain94/catalog-api/internal/service"
	"github.com/kingrain94/catalog-api/internal/service/pubsub"
	"github.com/kingrain94/catalog-api/internal/service/queue"
	"github.com/kingrain94/catalog-api/internal/service/storage"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

// @title           Catalog Swagger API
// @version         1.0
// @description     Multi-tenant product catalog API.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	osConfig, err := config.LoadOpenSearchConfig()
	if err != nil {
		appLogger.Fatal("Failed to load OpenSearch config", err)
	}
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	redisConfig, err := config.LoadRedisConfig()
	if err != nil {
		appLogger.Fatal("Failed to load Redis config", err)
	}
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	ctx := context.Background()

	sqsConfig, err := config.LoadSQSConfig()
	if err != nil {
		appLogger.Fatal("Failed to load SQS config", err)
	}
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	s3Config, err := config.LoadS3Config()
	if err != nil {
		appLogger.Fatal("Failed to load S3 config", err)
	}
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	imageStore := storage.NewS3ImageStore(s3Client, s3Config)

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	cacheConfig, err := config.LoadCacheConfig()
	if err != nil {
		appLogger.Fatal("Failed to load cache config", err)
	}
	cacheGateway := cache.NewGateway(newCacheStore(cacheConfig, redisClient), appLogger)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	notifier := service.NewNotifier(appLogger, sqsService, redisPubSub)
	issuer := service.NewTokenIssuer(cfg.JWTSecretKey, cfg.AccessTokenTTL)

	tenantService := service.NewTenantService(repo, cacheGateway, appLogger, cfg.DefaultRateLimit)
	userService := service.NewUserService(repo)
	authService := service.NewAuthService(repo, userService, issuer, cfg.RefreshTokenTTL, appLogger)

	resolver := tenant.NewResolver(tenantService, cfg.PublicPathPrefixes())

	server := api.NewServer(
		api.Services{
			Tenant:   tenantService,
			Category: service.NewCategoryService(repo, cacheGateway, cacheConfig, notifier),
			Product:  service.NewProductService(repo, cacheGateway, cacheConfig, imageStore, notifier, appLogger),
			Catalog:  service.NewCatalogService(repo, cacheGateway, cacheConfig),
			User:     userService,
			Auth:     authService,
			Health:   service.NewHealthService(dbConnections, cacheGateway, appLogger),
			Events:   redisPubSub,
		},
		api.Middleware{
			Tenant:     middleware.NewTenantMiddleware(resolver, appLogger),
			Auth:       middleware.NewAuthMiddleware(issuer, cfg.AdminAPIKey),
			RateLimit:  middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger),
			Validation: middleware.NewValidationMiddleware(appLogger),
		},
		appLogger,
		cfg.GlobalRateLimit,
		cfg.MaxUploadSize,
	)
	server.StartWebSocketHub()
	defer server.StopWebSocketHub()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(appLogger))
	router.MaxMultipartMemory = cfg.MaxUploadSize

	docs.SwaggerInfo.Title = "Catalog API"
	docs.SwaggerInfo.Description = "Multi-tenant product catalog API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group(cfg.APIPrefix)
	server.SetupRoutes(apiGroup)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Server listening on :%d", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}

func newCacheStore(cfg *config.CacheConfig, redisClient redis.UniversalClient) cache.Store {
	if cfg.Driver == config.CacheDriverMemory {
		return cache.NewMemoryStore(cfg.MemoryCapacity, cfg.MemoryShards, cfg.MaxTTL(), cfg.MemoryEvictionPct)
	}
	return cache.NewRedisStore(redisClient)
}
