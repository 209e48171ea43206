package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

type Config struct {
	ServerPort   int    `env:"SERVER_PORT" envDefault:"10000" json:"server_port"`
	Environment  string `env:"APP_ENV" envDefault:"development" json:"environment"`
	APIPrefix    string `env:"API_PREFIX" envDefault:"/api/v1" json:"api_prefix"`
	AdminAPIKey  string `env:"ADMIN_API_KEY" json:"-"`
	JWTSecretKey string `env:"JWT_SECRET_KEY" json:"-"`

	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"15m" json:"access_token_ttl"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TOKEN_TTL" envDefault:"168h" json:"refresh_token_ttl"`

	DefaultRateLimit int `env:"DEFAULT_RATE_LIMIT" envDefault:"1000" json:"default_rate_limit"` // requests per minute per tenant
	GlobalRateLimit  int `env:"GLOBAL_RATE_LIMIT" envDefault:"10000" json:"global_rate_limit"`  // requests per minute per IP

	// PublicPaths bypass tenant resolution. Entries are appended to APIPrefix.
	PublicPaths []string `env:"PUBLIC_PATHS" envSeparator:"," envDefault:"/health,/auth/register,/auth/login,/admin" json:"public_paths"`

	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"5242880" json:"max_upload_size"`

	TokenCleanupInterval  time.Duration `env:"TOKEN_CLEANUP_INTERVAL" envDefault:"1h" json:"token_cleanup_interval"`
	TokenCleanupRetention time.Duration `env:"TOKEN_CLEANUP_RETENTION" envDefault:"24h" json:"token_cleanup_retention"`

	IndexWorkerCount        int           `env:"INDEX_WORKER_COUNT" envDefault:"1" json:"index_worker_count"`
	IndexWorkerPollInterval time.Duration `env:"INDEX_WORKER_POLL_INTERVAL" envDefault:"5s" json:"index_worker_poll_interval"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.JWTSecretKey == "" {
		return nil, ErrMissingJWTSecret
	}
	return &cfg, nil
}

// PublicPathPrefixes returns the public paths prefixed with the API prefix
// plus the swagger UI path.
func (c *Config) PublicPathPrefixes() []string {
	prefixes := make([]string, 0, len(c.PublicPaths)+1)
	for _, p := range c.PublicPaths {
		prefixes = append(prefixes, c.APIPrefix+p)
	}
	return append(prefixes, "/swagger")
}
