package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

func TestNotifier_FansOutToEveryPublisher(t *testing.T) {
	at := time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC)
	queue := mocks.NewEventPublisher(t)
	live := mocks.NewEventPublisher(t)

	match := mock.MatchedBy(func(e *domain.CatalogEvent) bool {
		return e.Type == domain.EventProductUpdated && e.TenantID == tenantAcme && e.EntityID == product1 && e.OccurredAt.Equal(at)
	})
	queue.On("Publish", mock.Anything, match).Return(errors.New("queue down"))
	live.On("Publish", mock.Anything, match).Return(nil)

	n := NewNotifier(logger.NewNop(), queue, live)
	n.now = func() time.Time { return at }

	n.Notify(context.Background(), domain.EventProductUpdated, tenantAcme, product1)
}

func TestNotifier_NilIsNoop(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.EventProductCreated, tenantAcme, product1)
	})
}
