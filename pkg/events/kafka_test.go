package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisherEncodesEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, time.Second)

	stock := 15
	event := &InventoryEvent{
		Type:       CarCreated,
		Category:   "economyCar",
		ID:         "65f1c0ffee",
		Model:      "Corsa",
		Stock:      &stock,
		OccurredAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "economyCar:65f1c0ffee", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "car.created", string(msg.Headers[0].Value))

	var decoded InventoryEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, *event.Stock, *decoded.Stock)
	assert.Equal(t, event.Model, decoded.Model)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	cause := errors.New("broker unavailable")
	publisher := newKafkaPublisher(&fakeWriter{err: cause}, 0)

	err := publisher.Publish(context.Background(), &InventoryEvent{Type: CarDeleted})
	assert.ErrorIs(t, err, cause)
}

func TestNewKafkaPublisherRequiresBrokersAndTopic(t *testing.T) {
	_, err := NewKafkaPublisher(&KafkaConfig{Topic: "inventory"})
	assert.Error(t, err)

	_, err = NewKafkaPublisher(&KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)
}

func TestClosePropagates(t *testing.T) {
	writer := &fakeWriter{}
	require.NoError(t, newKafkaPublisher(writer, 0).Close())
	assert.True(t, writer.closed)
}

func TestNewKafkaPublisherFlushesEachEvent(t *testing.T) {
	publisher, err := NewKafkaPublisher(&KafkaConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "inventory",
		WriteTimeout: 2 * time.Second,
	})
	require.NoError(t, err)
	defer publisher.Close()

	writer, ok := publisher.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "inventory", writer.Topic)
	assert.Equal(t, 1, writer.BatchSize)
	assert.LessOrEqual(t, writer.BatchTimeout, 10*time.Millisecond)
	assert.Equal(t, 2*time.Second, publisher.timeout)
}
