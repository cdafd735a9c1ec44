package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
)

func testEvent() *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:          "evt-1",
		EventType:   entity.EventTransactionRecorded,
		AggregateID: "user-1",
		Payload:     map[string]any{"amount": float64(-10), "category": "tool.search"},
		Status:      entity.OutboxPending,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestKafkaPublisher_PublishEncodesEnvelope(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var env Envelope
		if err := json.Unmarshal(val, &env); err != nil {
			return err
		}
		if env.ID != "evt-1" || env.Type != string(entity.EventTransactionRecorded) || env.AggregateID != "user-1" {
			return errors.New("unexpected envelope")
		}
		if env.Payload["category"] != "tool.search" {
			return errors.New("payload not carried")
		}
		return nil
	})

	publisher := NewKafkaPublisher(producer, "ledger-events", logger.NewNoopLogger())
	require.NoError(t, publisher.Publish(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	publisher := NewKafkaPublisher(producer, "ledger-events", logger.NewNoopLogger())
	err := publisher.Publish(context.Background(), testEvent())

	assert.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
	assert.Contains(t, err.Error(), "evt-1")
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishCanceled(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher := NewKafkaPublisher(producer, "ledger-events", logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, publisher.Publish(ctx, testEvent()), context.Canceled)
	require.NoError(t, publisher.Close())
}
