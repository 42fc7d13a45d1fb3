package events

import (
	"time"

	"pharma-order-system/internal/entities"
	"pharma-order-system/pkg/constants"
)

const OrderLifecycleEventName = "order.lifecycle"

// Kinds of OrderLifecycleEvent.
const (
	KindOrderCreated     = "order_created"
	KindOrderUpdated     = "order_updated"
	KindOrderDeleted     = "order_deleted"
	KindStatusChanged    = "status_changed"
	KindCommentAdded     = "comment_added"
	KindTimelineAdded    = "timeline_event_added"
	KindDocumentAttached = "document_attached"
)

// OrderLifecycleEvent is published after an order change has been persisted.
type OrderLifecycleEvent struct {
	Kind      string                `json:"kind"`
	OrderID   string                `json:"orderId"`
	Status    constants.OrderStatus `json:"status"`
	OldStatus constants.OrderStatus `json:"oldStatus,omitempty"`
	EntryID   string                `json:"entryId,omitempty"`
	Actor     entities.Actor        `json:"actor"`
	At        time.Time             `json:"at"`
}

func (e OrderLifecycleEvent) Name() string {
	return OrderLifecycleEventName
}
