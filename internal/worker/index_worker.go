package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/service/queue"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

//go:generate mockery --name MessageQueue --output ../mocks
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// IndexWorker keeps the product search index in step with the database by
// consuming product change events from the queue. Events only carry ids; the
// current row is always re-read so out-of-order delivery converges.
type IndexWorker struct {
	queue        MessageQueue
	queueURL     string
	repo         repository.Repository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewIndexWorker(
	queue MessageQueue,
	queueURL string,
	repo repository.Repository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	return &IndexWorker{
		queue:        queue,
		queueURL:     queueURL,
		repo:         repo,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *IndexWorker) Start() {
	w.logger.Info("Starting index workers", zap.Int("workers", w.workerCount))

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *IndexWorker) Stop() {
	w.logger.Info("Stopping index workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All index workers stopped")
}

func (w *IndexWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Index worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Error("Index worker failed to process messages", err, zap.Int("worker", workerID))
			}
		}
	}
}

func (w *IndexWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Error("Failed to process message", err, zap.String("tenant_id", msg.Message.TenantID))
			continue
		}

		// Only delete the message if processing was successful
		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Error("Failed to delete message", err)
		}
	}

	return nil
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeCatalogEvent {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	event := msg.Event
	if event == nil || !event.IsProductEvent() {
		return nil
	}

	t, err := w.repo.Tenant().GetByID(ctx, event.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.logger.Warn("Dropping event of unknown tenant", zap.String("tenant_id", event.TenantID))
			return nil
		}
		return fmt.Errorf("failed to load tenant %s: %w", event.TenantID, err)
	}
	ctx = tenant.WithTenant(ctx, t)

	index := w.repo.Search()
	if event.Type == domain.EventProductHardDeleted {
		return index.Delete(ctx, t.ID, event.EntityID)
	}

	product, err := w.repo.Product().GetByID(ctx, event.EntityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return index.Delete(ctx, t.ID, event.EntityID)
		}
		return fmt.Errorf("failed to load product %s: %w", event.EntityID, err)
	}
	if product.IsDeleted() {
		return index.Delete(ctx, t.ID, product.ID)
	}

	return index.Index(ctx, product)
}
