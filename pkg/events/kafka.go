package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewKafkaPublisher(config *KafkaConfig) (*KafkaPublisher, error) {
	if len(config.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if config.Topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}

	return newKafkaPublisher(newKafkaWriter(config), config.WriteTimeout), nil
}

// newKafkaWriter flushes every event on its own; each publish is a single
// synchronous write.
func newKafkaWriter(config *KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              1,
		BatchTimeout:           5 * time.Millisecond,
		WriteTimeout:           config.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}

func newKafkaPublisher(writer messageWriter, timeout time.Duration) *KafkaPublisher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &KafkaPublisher{writer: writer, timeout: timeout}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *InventoryEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling inventory event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Category + ":" + event.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("error writing message to Kafka: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
