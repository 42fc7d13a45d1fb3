package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/events"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/internal/visibility"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/metrics"
	"pharma-order-system/pkg/types"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	GetMyOrders(ctx context.Context, filter types.Filter, claims *dto.UserClaims) ([]entities.Order, uint64, error)
	GetTeamOrders(ctx context.Context, filter types.Filter, claims *dto.UserClaims) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, orderID string) (*entities.Order, error)
	Sections(ctx context.Context, orderID string) (*dto.OrderSectionsDTO, error)
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO, actor entities.Actor) (*entities.Order, error)
	UpdateOrder(ctx context.Context, orderID string, payload dto.UpdateOrderDTO, actor entities.Actor) (*entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string, actor entities.Actor) error
}

type OrderService struct {
	repo      repositories.OrderRepositoryInterface
	publisher EventPublisher
	logger    *zap.Logger
}

func NewOrderService(repo repositories.OrderRepositoryInterface, publisher EventPublisher, logger *zap.Logger) OrderServiceInterface {
	return &OrderService{repo: repo, publisher: publisher, logger: logger}
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	return s.repo.GetOrders(ctx, filter, repositories.OrderScope{})
}

// GetMyOrders lists orders the caller created or is assigned to.
func (s *OrderService) GetMyOrders(ctx context.Context, filter types.Filter, claims *dto.UserClaims) ([]entities.Order, uint64, error) {
	return s.repo.GetOrders(ctx, filter, repositories.OrderScope{ParticipantUserID: claims.UserID})
}

// GetTeamOrders lists orders created by or assigned to anyone in the
// caller's team.
func (s *OrderService) GetTeamOrders(ctx context.Context, filter types.Filter, claims *dto.UserClaims) ([]entities.Order, uint64, error) {
	if !claims.HasRole(constants.ManagerRoles...) {
		return nil, 0, apperrors.ErrForbidden
	}
	if strings.TrimSpace(claims.Team) == "" {
		return nil, 0, apperrors.NewInvalidInputError("user %s is not assigned to a team", claims.UserID)
	}
	return s.repo.GetOrders(ctx, filter, repositories.OrderScope{Team: claims.Team})
}

func (s *OrderService) FindOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	return s.repo.FindOrder(ctx, orderID)
}

func (s *OrderService) Sections(ctx context.Context, orderID string) (*dto.OrderSectionsDTO, error) {
	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &dto.OrderSectionsDTO{
		OrderID:  order.OrderID,
		Status:   string(order.Status),
		Sections: visibility.Project(order),
	}, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO, actor entities.Actor) (*entities.Order, error) {
	status := constants.DefaultOrderStatus
	if payload.Status != "" {
		if !constants.IsKnownStatus(payload.Status) {
			return nil, apperrors.NewInvalidInputError("unknown order status %q", payload.Status)
		}
		status = constants.OrderStatus(payload.Status)
	}

	createdBy := actor
	if payload.CreatedBy != nil && payload.CreatedBy.UserID != "" {
		createdBy = *payload.CreatedBy
	}

	order := &entities.Order{
		OrderID:                  strings.TrimSpace(payload.OrderID),
		CreatedBy:                createdBy,
		AssignedTo:               payload.AssignedTo,
		Customer:                 *payload.Customer,
		Supplier:                 payload.Supplier,
		MaterialName:             payload.MaterialName,
		Materials:                payload.Materials,
		Quantity:                 *payload.Quantity,
		PriceToCustomer:          *payload.PriceToCustomer,
		PriceFromSupplier:        *payload.PriceFromSupplier,
		Status:                   status,
		AdvancePayment:           payload.AdvancePayment,
		ApprovalRequests:         payload.ApprovalRequests,
		PONumber:                 payload.PONumber,
		DeliveryTerms:            payload.DeliveryTerms,
		Incoterms:                payload.Incoterms,
		ETA:                      payload.ETA,
		Notes:                    payload.Notes,
		FreightHandler:           payload.FreightHandler,
		HSNCode:                  payload.HSNCode,
		EnquiryNo:                payload.EnquiryNo,
		UPC:                      payload.UPC,
		EAN:                      payload.EAN,
		MPN:                      payload.MPN,
		ISBN:                     payload.ISBN,
		InventoryAccount:         payload.InventoryAccount,
		InventoryValuationMethod: payload.InventoryValuationMethod,
		SupplierPOGenerated:      payload.SupplierPOGenerated,
		SupplierPOSent:           payload.SupplierPOSent,
		PaymentDetails:           payload.PaymentDetails,
		RFID:                     payload.RFID,
		Entity:                   payload.Entity,
	}
	order.EnsureCollections()

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, err
	}

	s.logger.Info("order created", zap.String("orderId", order.OrderID), zap.String("by", actor.UserID))
	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:    events.KindOrderCreated,
		OrderID: order.OrderID,
		Status:  order.Status,
		Actor:   actor,
		At:      order.CreatedAt,
	})
	return order, nil
}

// UpdateOrder replaces the fields present in payload and writes the whole
// record back. Status and the history collections are left alone.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID string, payload dto.UpdateOrderDTO, actor entities.Actor) (*entities.Order, error) {
	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	applyOrderUpdate(order, payload)

	if err := s.repo.SaveOrder(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("save_order").Inc()
		return nil, err
	}

	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:    events.KindOrderUpdated,
		OrderID: order.OrderID,
		Status:  order.Status,
		Actor:   actor,
		At:      order.UpdatedAt,
	})
	return order, nil
}

func applyOrderUpdate(o *entities.Order, p dto.UpdateOrderDTO) {
	if p.AssignedTo != nil {
		o.AssignedTo = p.AssignedTo
	}
	if p.Customer != nil {
		o.Customer = *p.Customer
	}
	if p.Supplier != nil {
		o.Supplier = p.Supplier
	}
	if p.MaterialName != nil {
		o.MaterialName = *p.MaterialName
	}
	if p.Materials != nil {
		o.Materials = *p.Materials
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.PriceToCustomer != nil {
		o.PriceToCustomer = *p.PriceToCustomer
	}
	if p.PriceFromSupplier != nil {
		o.PriceFromSupplier = *p.PriceFromSupplier
	}
	if p.AdvancePayment != nil {
		o.AdvancePayment = p.AdvancePayment
	}
	if p.ApprovalRequests != nil {
		o.ApprovalRequests = *p.ApprovalRequests
	}
	if p.FreightHandler != nil {
		o.FreightHandler = p.FreightHandler
	}
	if p.PaymentDetails != nil {
		o.PaymentDetails = p.PaymentDetails
	}
	if p.SupplierPOGenerated != nil {
		o.SupplierPOGenerated = *p.SupplierPOGenerated
	}
	if p.SupplierPOSent != nil {
		o.SupplierPOSent = *p.SupplierPOSent
	}

	strs := []struct {
		src *string
		dst *string
	}{
		{p.PONumber, &o.PONumber},
		{p.DeliveryTerms, &o.DeliveryTerms},
		{p.Incoterms, &o.Incoterms},
		{p.ETA, &o.ETA},
		{p.Notes, &o.Notes},
		{p.HSNCode, &o.HSNCode},
		{p.EnquiryNo, &o.EnquiryNo},
		{p.UPC, &o.UPC},
		{p.EAN, &o.EAN},
		{p.MPN, &o.MPN},
		{p.ISBN, &o.ISBN},
		{p.InventoryAccount, &o.InventoryAccount},
		{p.InventoryValuationMethod, &o.InventoryValuationMethod},
		{p.RFID, &o.RFID},
		{p.Entity, &o.Entity},
	}
	for _, f := range strs {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID string, actor entities.Actor) error {
	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.logger.Warn("order deleted", zap.String("orderId", orderID), zap.String("by", actor.UserID))
	s.publish(ctx, events.OrderLifecycleEvent{
		Kind:    events.KindOrderDeleted,
		OrderID: orderID,
		Actor:   actor,
		At:      time.Now().UTC(),
	})
	return nil
}

func (s *OrderService) publish(ctx context.Context, event events.OrderLifecycleEvent) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, event)
	}
}
