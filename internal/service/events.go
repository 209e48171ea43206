package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

//go:generate mockery --name EventPublisher --output ../mocks
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.CatalogEvent) error
}

// Notifier fans catalog events out to every publisher. Delivery is best
// effort: the write that produced the event has already committed.
type Notifier struct {
	publishers []EventPublisher
	logger     *logger.Logger
	now        func() time.Time
}

func NewNotifier(logger *logger.Logger, publishers ...EventPublisher) *Notifier {
	return &Notifier{
		publishers: publishers,
		logger:     logger,
		now:        time.Now,
	}
}

func (n *Notifier) Notify(ctx context.Context, eventType domain.CatalogEventType, tenantID, entityID string) {
	if n == nil {
		return
	}
	event := &domain.CatalogEvent{
		Type:       eventType,
		TenantID:   tenantID,
		EntityID:   entityID,
		OccurredAt: n.now().UTC(),
	}
	for _, p := range n.publishers {
		if err := p.Publish(ctx, event); err != nil {
			n.logger.Warn("Failed to publish catalog event",
				zap.String("type", string(eventType)),
				zap.String("tenant_id", tenantID),
				zap.String("entity_id", entityID),
				zap.Error(err))
		}
	}
}
