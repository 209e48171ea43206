package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	writerEnvPrefix = "POSTGRES_WRITER_"
	readerEnvPrefix = "POSTGRES_READER_"
)

// DatabaseConfig is read once per role, with the role's env prefix.
type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DB_NAME" envDefault:"catalog"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
}

type ConnectionPoolConfig struct {
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"50"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	// LogLevel is one of silent, error, warn, info.
	LogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

func loadDatabaseConfig(prefix string) (*DatabaseConfig, error) {
	return parse[DatabaseConfig](prefix+"database", prefix)
}

func loadConnectionPoolConfig() (*ConnectionPoolConfig, error) {
	return parse[ConnectionPoolConfig]("connection pool", "")
}

func (c *ConnectionPoolConfig) gormLogLevel() logger.LogLevel {
	switch c.LogLevel {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// DSN builds the PostgreSQL keyword/value connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// openDatabase opens a GORM connection for one role and tunes its pool.
// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which the
// services rely on when two writers race on the same slug, name or SKU.
func openDatabase(prefix string) (*gorm.DB, error) {
	dbConfig, err := loadDatabaseConfig(prefix)
	if err != nil {
		return nil, err
	}
	pool, err := loadConnectionPoolConfig()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(pool.gormLogLevel()),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return db, nil
}

// NewWriterDatabase opens the primary, used for writes and read-your-write lookups
func NewWriterDatabase() (*gorm.DB, error) {
	return openDatabase(writerEnvPrefix)
}

// NewReaderDatabase opens the replica used for list and storefront reads
func NewReaderDatabase() (*gorm.DB, error) {
	return openDatabase(readerEnvPrefix)
}

// DatabaseConnections holds both writer and reader database connections
type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

// NewDatabaseConnections creates both writer and reader database connections
func NewDatabaseConnections() (*DatabaseConnections, error) {
	writer, err := NewWriterDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to create writer database connection: %w", err)
	}

	reader, err := NewReaderDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to create reader database connection: %w", err)
	}

	return &DatabaseConnections{
		Writer: writer,
		Reader: reader,
	}, nil
}

func (dc *DatabaseConnections) each(fn func(role string, db *gorm.DB) error) error {
	var errs []error
	for _, conn := range []struct {
		role string
		db   *gorm.DB
	}{{"writer", dc.Writer}, {"reader", dc.Reader}} {
		if conn.db == nil {
			continue
		}
		if err := fn(conn.role, conn.db); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ping checks that both connections are reachable
func (dc *DatabaseConnections) Ping(ctx context.Context) error {
	return dc.each(func(role string, db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get %s sql.DB: %w", role, err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("%s database unreachable: %w", role, err)
		}
		return nil
	})
}

// Close closes both writer and reader database connections
func (dc *DatabaseConnections) Close() error {
	return dc.each(func(role string, db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return nil
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close %s database connection: %w", role, err)
		}
		return nil
	})
}
