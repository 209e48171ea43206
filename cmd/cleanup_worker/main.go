package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/repository/postgres"
	"github.com/kingrain94/catalog-api/internal/worker"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

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
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	cleanupWorker := worker.NewTokenCleanupWorker(
		pgRepo.RefreshToken(),
		appLogger,
		cfg.TokenCleanupInterval,
		cfg.TokenCleanupRetention,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	cleanupWorker.Start()

	<-sigChan
	appLogger.Info("Shutting down cleanup worker...")

	cleanupWorker.Stop()
	appLogger.Info("Cleanup worker stopped")
	appLogger.Sync()
}
