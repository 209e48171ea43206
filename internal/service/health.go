package service

import (
	"context"
	"net/http"
	"time"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	HealthStatusDown     = "down"

	checkUp   = "up"
	checkDown = "down"
)

//go:generate mockery --name Pinger --output ../mocks
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService probes the database and the cache. The database is
// required; a failing cache only degrades the service since reads fall back
// to the database.
type HealthService struct {
	database Pinger
	cache    Pinger
	logger   *logger.Logger
	timeout  time.Duration
}

func NewHealthService(database, cache Pinger, logger *logger.Logger) *HealthService {
	return &HealthService{
		database: database,
		cache:    cache,
		logger:   logger,
		timeout:  2 * time.Second,
	}
}

// Check returns the report and the HTTP status to serve it with.
func (s *HealthService) Check(ctx context.Context) (dto.HealthResponse, int) {
	resp := dto.HealthResponse{
		Status:    HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]dto.HealthCheck, 2),
	}
	code := http.StatusOK

	if err := s.ping(ctx, s.database); err != nil {
		s.logger.Error("Database health check failed", err)
		resp.Checks["database"] = dto.HealthCheck{Status: checkDown, Message: err.Error()}
		resp.Status = HealthStatusDown
		code = http.StatusServiceUnavailable
	} else {
		resp.Checks["database"] = dto.HealthCheck{Status: checkUp}
	}

	if err := s.ping(ctx, s.cache); err != nil {
		s.logger.Warn("Cache health check failed: " + err.Error())
		resp.Checks["cache"] = dto.HealthCheck{Status: checkDown, Message: err.Error()}
		if resp.Status == HealthStatusOK {
			resp.Status = HealthStatusDegraded
		}
	} else {
		resp.Checks["cache"] = dto.HealthCheck{Status: checkUp}
	}

	return resp, code
}

func (s *HealthService) ping(ctx context.Context, p Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return p.Ping(ctx)
}
