package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/repository/composite"
	"github.com/kingrain94/catalog-api/internal/service/queue"
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
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	osConfig, err := config.LoadOpenSearchConfig()
	if err != nil {
		appLogger.Fatal("Failed to load OpenSearch config", err)
	}
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	appLogger.Info("Database and OpenSearch connections established for index worker")

	sqsConfig, err := config.LoadSQSConfig()
	if err != nil {
		appLogger.Fatal("Failed to load SQS config", err)
	}
	sqsClient, err := sqsConfig.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	indexWorker := worker.NewIndexWorker(
		sqsService,
		sqsService.EventsQueueURL(),
		repo,
		appLogger,
		cfg.IndexWorkerCount,
		cfg.IndexWorkerPollInterval,
	)
	indexWorker.Start()

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	indexWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
