package listeners

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"pharma-order-system/internal/events"
	"pharma-order-system/pkg/eventbus"
	"pharma-order-system/pkg/kafka"
	"pharma-order-system/pkg/metrics"
)

// KafkaListener forwards order lifecycle events to a topic, keyed by
// orderId so one order's events stay on one partition.
type KafkaListener struct {
	producer kafka.Producer
	topic    string
	logger   *zap.Logger
}

func NewKafkaListener(producer kafka.Producer, topic string, logger *zap.Logger) *KafkaListener {
	return &KafkaListener{producer: producer, topic: topic, logger: logger}
}

func (l *KafkaListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderLifecycleEventName, l.handleOrderLifecycle)
	l.logger.Info("KafkaListener subscribed", zap.String("event", events.OrderLifecycleEventName), zap.String("topic", l.topic))
}

func (l *KafkaListener) handleOrderLifecycle(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderLifecycleEvent)
	if !ok {
		return nil
	}

	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}
	if err := l.producer.SendMessage(ctx, l.topic, []byte(e.OrderID), value); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("kafka_publish").Inc()
		return fmt.Errorf("publish lifecycle event for order %s: %w", e.OrderID, err)
	}
	return nil
}
