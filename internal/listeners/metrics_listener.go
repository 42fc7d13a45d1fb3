package listeners

import (
	"context"

	"go.uber.org/zap"

	"pharma-order-system/internal/events"
	"pharma-order-system/pkg/eventbus"
	"pharma-order-system/pkg/metrics"
)

// MetricsListener turns order lifecycle events into prometheus counters.
type MetricsListener struct {
	logger *zap.Logger
}

func NewMetricsListener(logger *zap.Logger) *MetricsListener {
	return &MetricsListener{logger: logger}
}

func (l *MetricsListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderLifecycleEventName, l.handleOrderLifecycle)
	l.logger.Info("MetricsListener subscribed", zap.String("event", events.OrderLifecycleEventName))
}

func (l *MetricsListener) handleOrderLifecycle(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderLifecycleEvent)
	if !ok {
		return nil
	}

	switch e.Kind {
	case events.KindOrderCreated:
		metrics.OrdersCreatedTotal.Inc()
	case events.KindStatusChanged:
		metrics.OrderStatusChangesTotal.WithLabelValues(string(e.Status)).Inc()
		metrics.OrderLifecycleEntriesTotal.WithLabelValues(e.Kind).Inc()
	case events.KindCommentAdded, events.KindTimelineAdded, events.KindDocumentAttached:
		metrics.OrderLifecycleEntriesTotal.WithLabelValues(e.Kind).Inc()
	}
	return nil
}
