package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

// TokenCleanupWorker periodically purges refresh tokens that expired or were
// revoked more than the retention period ago.
type TokenCleanupWorker struct {
	tokens       repository.RefreshTokenRepository
	logger       *logger.Logger
	interval     time.Duration
	retention    time.Duration
	now          func() time.Time
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewTokenCleanupWorker(tokens repository.RefreshTokenRepository, logger *logger.Logger, interval, retention time.Duration) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		tokens:       tokens,
		logger:       logger,
		interval:     interval,
		retention:    retention,
		now:          time.Now,
		shutdownChan: make(chan struct{}),
	}
}

func (w *TokenCleanupWorker) Start() {
	w.logger.Info("Starting token cleanup worker", zap.Duration("interval", w.interval))

	w.waitGroup.Add(1)
	go w.run()
}

func (w *TokenCleanupWorker) Stop() {
	w.logger.Info("Stopping token cleanup worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Token cleanup worker stopped")
}

func (w *TokenCleanupWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			if _, err := w.RunOnce(context.Background()); err != nil {
				w.logger.Error("Token cleanup failed", err)
			}
		}
	}
}

// RunOnce deletes stale tokens and returns how many were removed.
func (w *TokenCleanupWorker) RunOnce(ctx context.Context) (int64, error) {
	deleted, err := w.tokens.DeleteStale(ctx, w.now().Add(-w.retention))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		w.logger.Info("Deleted stale refresh tokens", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}
