package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jahpay/ramp-aggregator/pkg/config"
)

const (
	defaultWriteTimeout = 10 * time.Second
	defaultBatchTimeout = 10 * time.Millisecond
)

// KafkaPublisher writes events to a Kafka topic keyed by transaction id, so
// that all events of one transaction land on the same partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher for cfg.Topic on cfg.Brokers.
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(newWriter(cfg))
}

// newWriter builds a synchronous writer. Publishing sits on the request
// path, so a batch is flushed after BatchTimeout instead of kafka-go's 1s.
func newWriter(cfg config.KafkaConfig) *kafka.Writer {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		WriteTimeout: defaultWriteTimeout,
	}
}

// NewKafkaPublisherWithWriter wraps an already configured writer.
func NewKafkaPublisherWithWriter(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish writes events as one batch.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs, err := encode(events, time.Now())
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write %d events: %w", len(msgs), err)
	}
	return nil
}

// Close flushes pending writes and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func encode(events []Event, now time.Time) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		v, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("failed to encode event %s for %s: %w", e.Type, e.TransactionID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.TransactionID),
			Value: v,
			Time:  now,
		})
	}
	return msgs, nil
}
