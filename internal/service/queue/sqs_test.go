package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/internal/service/queue"
)

const eventsQueue = "http://localhost:4566/000000000000/catalog-events-queue"

func newService(client queue.API) *queue.SQSService {
	return queue.NewSQSService(client, &config.SQSConfig{EventsQueueURL: eventsQueue})
}

func TestPublish_ProductEvent(t *testing.T) {
	client := mocks.NewSQSAPI(t)
	event := &domain.CatalogEvent{
		Type:       domain.EventProductUpdated,
		TenantID:   "tenant-a",
		EntityID:   "p-1",
		OccurredAt: time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC),
	}
	client.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		var msg queue.Message
		if err := json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &msg); err != nil {
			return false
		}
		return aws.ToString(in.QueueUrl) == eventsQueue &&
			msg.Type == queue.MessageTypeCatalogEvent &&
			msg.TenantID == "tenant-a" &&
			msg.Event != nil && msg.Event.EntityID == "p-1"
	})).Return(&sqs.SendMessageOutput{}, nil)

	err := newService(client).Publish(context.Background(), event)

	assert.NoError(t, err)
}

func TestPublish_SkipsCategoryEvents(t *testing.T) {
	client := mocks.NewSQSAPI(t)

	err := newService(client).Publish(context.Background(), &domain.CatalogEvent{Type: domain.EventCategoryCreated, TenantID: "tenant-a"})

	assert.NoError(t, err)
	client.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestPublish_SendFailure(t *testing.T) {
	client := mocks.NewSQSAPI(t)
	client.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	err := newService(client).Publish(context.Background(), &domain.CatalogEvent{Type: domain.EventProductCreated})

	assert.ErrorContains(t, err, "throttled")
}

func TestReceiveMessages(t *testing.T) {
	client := mocks.NewSQSAPI(t)
	body, err := json.Marshal(queue.Message{
		Type:     queue.MessageTypeCatalogEvent,
		TenantID: "tenant-a",
		Event:    &domain.CatalogEvent{Type: domain.EventProductDeleted, TenantID: "tenant-a", EntityID: "p-1"},
	})
	require.NoError(t, err)

	client.On("ReceiveMessage", mock.Anything, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(eventsQueue),
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     20,
	}).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{
		{Body: aws.String(string(body)), ReceiptHandle: aws.String("r-1")},
	}}, nil)

	messages, err := newService(client).ReceiveMessages(context.Background(), eventsQueue, 10, 20)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "r-1", aws.ToString(messages[0].ReceiptHandle))
	assert.Equal(t, domain.EventProductDeleted, messages[0].Message.Event.Type)
}

func TestReceiveMessages_MalformedBody(t *testing.T) {
	client := mocks.NewSQSAPI(t)
	client.On("ReceiveMessage", mock.Anything, mock.Anything).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{
		{Body: aws.String("{not json"), ReceiptHandle: aws.String("r-1")},
	}}, nil)

	_, err := newService(client).ReceiveMessages(context.Background(), eventsQueue, 10, 20)

	assert.Error(t, err)
}

func TestDeleteMessage(t *testing.T) {
	client := mocks.NewSQSAPI(t)
	client.On("DeleteMessage", mock.Anything, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(eventsQueue),
		ReceiptHandle: aws.String("r-1"),
	}).Return(&sqs.DeleteMessageOutput{}, nil)

	err := newService(client).DeleteMessage(context.Background(), eventsQueue, aws.String("r-1"))

	assert.NoError(t, err)
}
