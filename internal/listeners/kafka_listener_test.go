package listeners

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/events"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/eventbus"
)

type sentMessage struct {
	topic string
	key   []byte
	value []byte
}

type fakeProducer struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (p *fakeProducer) SendMessage(_ context.Context, topic string, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sentMessage{topic: topic, key: key, value: value})
	return nil
}

func (p *fakeProducer) Close() error { return nil }

func statusChanged() events.OrderLifecycleEvent {
	return events.OrderLifecycleEvent{
		Kind:      events.KindStatusChanged,
		OrderID:   "ORD-2025-014",
		Status:    constants.StatusApproved,
		OldStatus: constants.StatusAwaitingApproval,
		EntryID:   "timeline-1",
		Actor:     entities.Actor{UserID: "user-1", Name: "Priya"},
		At:        time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaListener_PublishesKeyedByOrder(t *testing.T) {
	producer := &fakeProducer{}
	bus := eventbus.New(zap.NewNop())
	NewKafkaListener(producer, "orders.lifecycle", zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), statusChanged())
	bus.Wait()

	require.Len(t, producer.sent, 1)
	msg := producer.sent[0]
	assert.Equal(t, "orders.lifecycle", msg.topic)
	assert.Equal(t, "ORD-2025-014", string(msg.key))

	var decoded events.OrderLifecycleEvent
	require.NoError(t, json.Unmarshal(msg.value, &decoded))
	assert.Equal(t, statusChanged(), decoded)
}

func TestKafkaListener_ProducerErrorReturned(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker down")}
	l := NewKafkaListener(producer, "orders.lifecycle", zap.NewNop())

	err := l.handleOrderLifecycle(context.Background(), statusChanged())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORD-2025-014")
}

type otherEvent struct{}

func (otherEvent) Name() string { return events.OrderLifecycleEventName }

func TestKafkaListener_IgnoresForeignPayloads(t *testing.T) {
	producer := &fakeProducer{}
	l := NewKafkaListener(producer, "orders.lifecycle", zap.NewNop())

	assert.NoError(t, l.handleOrderLifecycle(context.Background(), otherEvent{}))
	assert.Empty(t, producer.sent)
}
