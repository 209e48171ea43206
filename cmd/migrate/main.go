package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/migrations"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	writer, err := config.NewWriterDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	sqlDB, err := writer.DB()
	if err != nil {
		appLogger.Fatal("Failed to get sql.DB", err)
	}
	defer sqlDB.Close()

	var args []string
	if flag.NArg() > 1 {
		args = flag.Args()[1:]
	}
	if err := migrations.Run(context.Background(), sqlDB, appLogger, command, args...); err != nil {
		appLogger.Fatal("Migration failed", err)
	}
	appLogger.Info("Migrations complete")
}
