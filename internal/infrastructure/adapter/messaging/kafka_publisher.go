package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/messaging"
)

var _ messaging.EventPublisher = (*KafkaPublisher)(nil)

// Envelope is the JSON body of every ledger message
type Envelope struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregateId"`
	OccurredAt  time.Time      `json:"occurredAt"`
	Payload     map[string]any `json:"payload"`
}

// KafkaPublisher publishes outbox events synchronously, keyed by user id
// so every event of one account lands on the same partition in order
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   coreport.Logger
}

// NewKafkaPublisher wraps an existing producer
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, logger coreport.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// NewSyncProducer creates a producer that waits for all in-sync replicas
func NewSyncProducer(brokers []string, clientID string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return producer, nil
}

// Publish sends one event and waits for the broker acknowledgement
func (p *KafkaPublisher) Publish(ctx context.Context, event *entity.OutboxEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(Envelope{
		ID:          event.ID,
		Type:        string(event.EventType),
		AggregateID: event.AggregateID,
		OccurredAt:  event.CreatedAt,
		Payload:     event.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.AggregateID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-id"), Value: []byte(event.ID)},
			{Key: []byte("event-type"), Value: []byte(event.EventType)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish event %s: %w", event.ID, err)
	}

	p.logger.Debug("Published ledger event", map[string]any{
		"event_id":   event.ID,
		"event_type": event.EventType,
		"partition":  partition,
		"offset":     offset,
	})
	return nil
}

// Close flushes and closes the producer
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
