package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/events"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/internal/repositories/mocks"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

func newOrderService(t *testing.T) (OrderServiceInterface, *mocks.MockOrderRepositoryInterface, *recordingPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepositoryInterface(ctrl)
	pub := &recordingPublisher{}
	return NewOrderService(repo, pub, zap.NewNop()), repo, pub
}

func createPayload() dto.CreateOrderDTO {
	return dto.CreateOrderDTO{
		OrderID:           " ORD-2025-010 ",
		Customer:          &entities.ContactInfo{Name: "Apollo Hospitals"},
		MaterialName:      "Paracetamol API",
		Quantity:          &entities.Quantity{Value: 250, Unit: "kg"},
		PriceToCustomer:   &entities.Price{Amount: 12500, Currency: "USD"},
		PriceFromSupplier: &entities.Price{Amount: 9000, Currency: "USD"},
		ETA:               "2025-04-13",
	}
}

func TestCreateOrder_DefaultsCreatorAndStatus(t *testing.T) {
	svc, repo, pub := newOrderService(t)

	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *entities.Order) error {
		o.ID = 1
		o.CreatedAt = fixedNow
		return nil
	})

	got, err := svc.CreateOrder(context.Background(), createPayload(), testActor)
	require.NoError(t, err)

	assert.Equal(t, "ORD-2025-010", got.OrderID)
	assert.Equal(t, testActor, got.CreatedBy)
	assert.Equal(t, constants.DefaultOrderStatus, got.Status)
	assert.Equal(t, "2025-04-13", got.ETA)
	assert.Empty(t, got.AuditLogs)
	assert.Empty(t, got.Comments)
	assert.Empty(t, got.Timeline)
	assert.NotNil(t, got.Documents)

	require.Len(t, pub.events, 1)
	ev := pub.events[0].(events.OrderLifecycleEvent)
	assert.Equal(t, events.KindOrderCreated, ev.Kind)
	assert.Equal(t, "ORD-2025-010", ev.OrderID)
}

func TestCreateOrder_KeepsExplicitCreatorAndStatus(t *testing.T) {
	svc, repo, _ := newOrderService(t)
	creator := entities.Actor{UserID: "user-9", Name: "Ravi Kumar", Role: constants.RoleEmployee}

	p := createPayload()
	p.CreatedBy = &creator
	p.Status = string(constants.StatusApproved)

	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateOrder(context.Background(), p, testActor)
	require.NoError(t, err)
	assert.Equal(t, creator, got.CreatedBy)
	assert.Equal(t, constants.StatusApproved, got.Status)
}

func TestCreateOrder_RejectsUnknownStatus(t *testing.T) {
	svc, _, pub := newOrderService(t)

	p := createPayload()
	p.Status = "Teleported"

	_, err := svc.CreateOrder(context.Background(), p, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, pub.events)
}

func TestCreateOrder_DuplicateOrderIDIsConflict(t *testing.T) {
	svc, repo, pub := newOrderService(t)

	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(apperrors.ErrConflict)

	_, err := svc.CreateOrder(context.Background(), createPayload(), testActor)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, pub.events)
}

func TestUpdateOrder_ReplacesOnlyPresentFields(t *testing.T) {
	svc, repo, _ := newOrderService(t)

	stored := storedOrder()
	stored.Status = constants.StatusInTransit
	stored.MaterialName = "Paracetamol API"
	stored.PONumber = "PO-1"
	stored.Notes = "keep me"
	stored.ETA = "2025-04-01"
	stored.Comments = []entities.Comment{{ID: "comment-a", Message: "first"}}
	stored.Timeline = []entities.TimelineEvent{{ID: "timeline-a", Event: "Booked"}}

	repo.EXPECT().FindOrder(gomock.Any(), "ORD-2025-001").Return(stored, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), stored).Return(nil)

	eta := "2025-04-13"
	po := "PO-2"
	got, err := svc.UpdateOrder(context.Background(), "ORD-2025-001", dto.UpdateOrderDTO{
		PONumber: &po,
		ETA:      &eta,
	}, testActor)
	require.NoError(t, err)

	assert.Equal(t, "PO-2", got.PONumber)
	assert.Equal(t, "2025-04-13", got.ETA)
	assert.Equal(t, "keep me", got.Notes)
	assert.Equal(t, "Paracetamol API", got.MaterialName)
	assert.Equal(t, constants.StatusInTransit, got.Status)
	assert.Equal(t, []entities.Comment{{ID: "comment-a", Message: "first"}}, got.Comments)
	assert.Equal(t, []entities.TimelineEvent{{ID: "timeline-a", Event: "Booked"}}, got.Timeline)
	assert.Empty(t, got.AuditLogs)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc, repo, pub := newOrderService(t)

	repo.EXPECT().FindOrder(gomock.Any(), "ORD-404").Return(nil, apperrors.ErrNotFound)

	_, err := svc.UpdateOrder(context.Background(), "ORD-404", dto.UpdateOrderDTO{}, testActor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestGetTeamOrders(t *testing.T) {
	filter := types.Filter{Page: 1, Limit: 20}

	t.Run("manager with a team", func(t *testing.T) {
		svc, repo, _ := newOrderService(t)
		claims := &dto.UserClaims{UserID: "user-3", Role: constants.RoleManager, Team: "Sourcing"}

		repo.EXPECT().GetOrders(gomock.Any(), filter, repositories.OrderScope{Team: "Sourcing"}).
			Return([]entities.Order{{OrderID: "ORD-1"}}, uint64(1), nil)

		orders, total, err := svc.GetTeamOrders(context.Background(), filter, claims)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		assert.Len(t, orders, 1)
	})

	t.Run("manager without a team", func(t *testing.T) {
		svc, _, _ := newOrderService(t)
		claims := &dto.UserClaims{UserID: "user-3", Role: constants.RoleManager, Team: "  "}

		_, _, err := svc.GetTeamOrders(context.Background(), filter, claims)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		svc, _, _ := newOrderService(t)
		claims := &dto.UserClaims{UserID: "user-4", Role: constants.RoleEmployee, Team: "Sourcing"}

		_, _, err := svc.GetTeamOrders(context.Background(), filter, claims)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestGetMyOrders_ScopesToCaller(t *testing.T) {
	svc, repo, _ := newOrderService(t)
	filter := types.Filter{Page: 1, Limit: 20}

	repo.EXPECT().GetOrders(gomock.Any(), filter, repositories.OrderScope{ParticipantUserID: "user-4"}).
		Return([]entities.Order{}, uint64(0), nil)

	_, _, err := svc.GetMyOrders(context.Background(), filter, &dto.UserClaims{UserID: "user-4", Role: constants.RoleEmployee})
	require.NoError(t, err)
}

func TestDeleteOrder_PublishesEvent(t *testing.T) {
	svc, repo, pub := newOrderService(t)

	repo.EXPECT().DeleteOrder(gomock.Any(), "ORD-2025-001").Return(nil)

	require.NoError(t, svc.DeleteOrder(context.Background(), "ORD-2025-001", testActor))
	require.Len(t, pub.events, 1)
	ev := pub.events[0].(events.OrderLifecycleEvent)
	assert.Equal(t, events.KindOrderDeleted, ev.Kind)
	assert.WithinDuration(t, time.Now().UTC(), ev.At, time.Minute)
}
