package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

func TestTokenCleanupWorker_RunOnce(t *testing.T) {
	now := time.Date(2025, 7, 17, 12, 0, 0, 0, time.UTC)
	tokens := mocks.NewRefreshTokenRepository(t)
	tokens.On("DeleteStale", context.Background(), now.Add(-24*time.Hour)).Return(int64(7), nil)

	w := NewTokenCleanupWorker(tokens, logger.NewNop(), time.Hour, 24*time.Hour)
	w.now = func() time.Time { return now }

	deleted, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestTokenCleanupWorker_RunOnceError(t *testing.T) {
	tokens := mocks.NewRefreshTokenRepository(t)
	tokens.On("DeleteStale", context.Background(), mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("db down"))

	w := NewTokenCleanupWorker(tokens, logger.NewNop(), time.Hour, time.Hour)

	_, err := w.RunOnce(context.Background())

	assert.Error(t, err)
}
