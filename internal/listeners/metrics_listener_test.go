package listeners

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"pharma-order-system/internal/events"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/metrics"
)

func TestMetricsListener_CountsByKind(t *testing.T) {
	l := NewMetricsListener(zap.NewNop())
	ctx := context.Background()

	created := testutil.ToFloat64(metrics.OrdersCreatedTotal)
	approved := testutil.ToFloat64(metrics.OrderStatusChangesTotal.WithLabelValues(string(constants.StatusApproved)))
	comments := testutil.ToFloat64(metrics.OrderLifecycleEntriesTotal.WithLabelValues(events.KindCommentAdded))

	assert.NoError(t, l.handleOrderLifecycle(ctx, events.OrderLifecycleEvent{Kind: events.KindOrderCreated, OrderID: "ORD-1"}))
	assert.NoError(t, l.handleOrderLifecycle(ctx, events.OrderLifecycleEvent{Kind: events.KindStatusChanged, OrderID: "ORD-1", Status: constants.StatusApproved}))
	assert.NoError(t, l.handleOrderLifecycle(ctx, events.OrderLifecycleEvent{Kind: events.KindCommentAdded, OrderID: "ORD-1"}))
	assert.NoError(t, l.handleOrderLifecycle(ctx, events.OrderLifecycleEvent{Kind: events.KindCommentAdded, OrderID: "ORD-1"}))

	assert.Equal(t, created+1, testutil.ToFloat64(metrics.OrdersCreatedTotal))
	assert.Equal(t, approved+1, testutil.ToFloat64(metrics.OrderStatusChangesTotal.WithLabelValues(string(constants.StatusApproved))))
	assert.Equal(t, comments+2, testutil.ToFloat64(metrics.OrderLifecycleEntriesTotal.WithLabelValues(events.KindCommentAdded)))
}
