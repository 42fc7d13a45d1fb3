package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/events"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/eventbus"
	"pharma-order-system/pkg/metrics"
)

// EventPublisher is the part of the event bus services publish to.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

// OrderLifecycleServiceInterface appends to an order's history. Every call
// is one lookup, one in-memory change and one full-record write; there is
// no version check, so concurrent writers to the same order race and the
// last one wins.
type OrderLifecycleServiceInterface interface {
	UpdateStatus(ctx context.Context, orderID string, newStatus constants.OrderStatus, note string, actor entities.Actor) (*entities.Order, error)
	AddComment(ctx context.Context, orderID, message string, isInternal *bool, actor entities.Actor) (*entities.Order, error)
	AddTimelineEvent(ctx context.Context, orderID, event, details string, status *constants.OrderStatus, actor entities.Actor) (*entities.Order, error)
	AttachDocument(ctx context.Context, orderID string, docType constants.DocumentType, payload, filename, mimeType string, actor entities.Actor) (*entities.Order, error)
}

type OrderLifecycleService struct {
	repo      repositories.OrderRepositoryInterface
	publisher EventPublisher
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewOrderLifecycleService(
	repo repositories.OrderRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) OrderLifecycleServiceInterface {
	return &OrderLifecycleService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *OrderLifecycleService) UpdateStatus(ctx context.Context, orderID string, newStatus constants.OrderStatus, note string, actor entities.Actor) (*entities.Order, error) {
	if !constants.IsKnownStatus(string(newStatus)) {
		return nil, apperrors.NewInvalidInputError("unknown order status %q", newStatus)
	}

	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	at := s.now()
	oldStatus := order.Status
	order.Status = newStatus

	auditNote := note
	if auditNote == "" {
		auditNote = fmt.Sprintf("Status changed to %s", newStatus)
	}
	details := note
	if details == "" {
		details = fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus)
	}

	order.AuditLogs = append(order.AuditLogs, entities.AuditLog{
		Timestamp:    at,
		UserID:       actor.UserID,
		UserName:     actor.Name,
		FieldChanged: "status",
		OldValue:     string(oldStatus),
		NewValue:     string(newStatus),
		Note:         auditNote,
	})
	entry := entities.TimelineEvent{
		ID:        "timeline-" + s.newID(),
		Timestamp: at,
		Event:     "Status Updated",
		Actor:     actor,
		Details:   details,
		Status:    newStatus,
	}
	order.Timeline = append(order.Timeline, entry)

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("orderId", orderID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)),
		zap.String("by", actor.UserID))
	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:      events.KindStatusChanged,
		OrderID:   orderID,
		Status:    newStatus,
		OldStatus: oldStatus,
		EntryID:   entry.ID,
		Actor:     actor,
		At:        at,
	})
	return order, nil
}

// AddComment appends a comment. isInternal defaults to true.
func (s *OrderLifecycleService) AddComment(ctx context.Context, orderID, message string, isInternal *bool, actor entities.Actor) (*entities.Order, error) {
	if message == "" {
		return nil, apperrors.NewInvalidInputError("comment message is required")
	}

	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	internal := true
	if isInternal != nil {
		internal = *isInternal
	}
	comment := entities.Comment{
		ID:         "comment-" + s.newID(),
		Timestamp:  s.now(),
		UserID:     actor.UserID,
		UserName:   actor.Name,
		Message:    message,
		IsInternal: internal,
	}
	order.Comments = append(order.Comments, comment)

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:    events.KindCommentAdded,
		OrderID: orderID,
		Status:  order.Status,
		EntryID: comment.ID,
		Actor:   actor,
		At:      comment.Timestamp,
	})
	return order, nil
}

// AddTimelineEvent appends a milestone. The entry's status is a snapshot;
// it defaults to the order's current status and never changes the order's
// own status field.
func (s *OrderLifecycleService) AddTimelineEvent(ctx context.Context, orderID, event, details string, status *constants.OrderStatus, actor entities.Actor) (*entities.Order, error) {
	if event == "" {
		return nil, apperrors.NewInvalidInputError("timeline event label is required")
	}
	if status != nil && !constants.IsKnownStatus(string(*status)) {
		return nil, apperrors.NewInvalidInputError("unknown order status %q", *status)
	}

	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	snapshot := order.Status
	if status != nil {
		snapshot = *status
	}
	entry := entities.TimelineEvent{
		ID:        "timeline-" + s.newID(),
		Timestamp: s.now(),
		Event:     event,
		Actor:     actor,
		Details:   details,
		Status:    snapshot,
	}
	order.Timeline = append(order.Timeline, entry)

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:    events.KindTimelineAdded,
		OrderID: orderID,
		Status:  order.Status,
		EntryID: entry.ID,
		Actor:   actor,
		At:      entry.Timestamp,
	})
	return order, nil
}

// AttachDocument stores payload under docType, replacing any document
// already held in that slot.
func (s *OrderLifecycleService) AttachDocument(ctx context.Context, orderID string, docType constants.DocumentType, payload, filename, mimeType string, actor entities.Actor) (*entities.Order, error) {
	if !constants.IsKnownDocumentType(string(docType)) {
		return nil, apperrors.NewInvalidInputError("unknown document type %q", docType)
	}

	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if mimeType == "" {
		mimeType = constants.DefaultDocumentMimeType
	}
	doc := entities.Document{
		ID:         "doc_" + s.newID(),
		Filename:   filename,
		UploadedAt: s.now(),
		UploadedBy: actor,
		FileSize:   len(payload),
		MimeType:   mimeType,
		Data:       payload,
	}
	if order.Documents == nil {
		order.Documents = entities.Documents{}
	}
	order.Documents[docType] = doc

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order document attached",
		zap.String("orderId", orderID),
		zap.String("documentType", string(docType)),
		zap.Int("fileSize", doc.FileSize))
	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:    events.KindDocumentAttached,
		OrderID: orderID,
		Status:  order.Status,
		EntryID: doc.ID,
		Actor:   actor,
		At:      doc.UploadedAt,
	})
	return order, nil
}

// save persists the mutated order. A failure leaves the caller not knowing
// whether the entry landed, so it is surfaced unchanged and never retried.
func (s *OrderLifecycleService) save(ctx context.Context, order *entities.Order) error {
	if err := s.repo.SaveOrder(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("save_order").Inc()
		s.logger.Error("failed to persist order", zap.String("orderId", order.OrderID), zap.Error(err))
		return err
	}
	return nil
}

func (s *OrderLifecycleService) publish(ctx context.Context, event events.OrderLifecycleEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, event)
}
