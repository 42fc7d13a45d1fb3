package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/events"
	"pharma-order-system/internal/repositories/mocks"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/eventbus"
)

type recordingPublisher struct {
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event eventbus.Event) {
	p.events = append(p.events, event)
}

var (
	testActor = entities.Actor{UserID: "user-1", Name: "Priya Shah", Role: constants.RoleManager}
	fixedNow  = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
)

func newLifecycleService(t *testing.T) (*OrderLifecycleService, *mocks.MockOrderRepositoryInterface, *recordingPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepositoryInterface(ctrl)
	pub := &recordingPublisher{}

	seq := 0
	svc := &OrderLifecycleService{
		repo:      repo,
		publisher: pub,
		logger:    zap.NewNop(),
		now:       func() time.Time { return fixedNow },
		newID: func() string {
			seq++
			return fmt.Sprintf("id%d", seq)
		},
	}
	return svc, repo, pub
}

func storedOrder() *entities.Order {
	o := &entities.Order{
		OrderID: "ORD-2025-001",
		Status:  constants.StatusPOReceivedFromClient,
	}
	o.EnsureCollections()
	return o
}

func TestUpdateStatus_AppendsAuditAndTimeline(t *testing.T) {
	svc, repo, pub := newLifecycleService(t)
	order := storedOrder()

	repo.EXPECT().FindOrder(gomock.Any(), "ORD-2025-001").Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), order).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), "ORD-2025-001", constants.StatusDraftingPOForSupplier, "", testActor)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusDraftingPOForSupplier, got.Status)
	require.Len(t, got.AuditLogs, 1)
	audit := got.AuditLogs[0]
	assert.Equal(t, "status", audit.FieldChanged)
	assert.Equal(t, string(constants.StatusPOReceivedFromClient), audit.OldValue)
	assert.Equal(t, string(constants.StatusDraftingPOForSupplier), audit.NewValue)
	assert.Equal(t, "Status changed to Drafting_PO_for_Supplier", audit.Note)
	assert.Equal(t, "user-1", audit.UserID)
	assert.Equal(t, fixedNow, audit.Timestamp)

	require.Len(t, got.Timeline, 1)
	entry := got.Timeline[0]
	assert.Equal(t, "timeline-id1", entry.ID)
	assert.Equal(t, "Status Updated", entry.Event)
	assert.Equal(t, "Status changed from PO_Received_from_Client to Drafting_PO_for_Supplier", entry.Details)
	assert.Equal(t, constants.StatusDraftingPOForSupplier, entry.Status)
	assert.Equal(t, testActor, entry.Actor)

	require.Len(t, pub.events, 1)
	ev := pub.events[0].(events.OrderLifecycleEvent)
	assert.Equal(t, events.KindStatusChanged, ev.Kind)
	assert.Equal(t, constants.StatusPOReceivedFromClient, ev.OldStatus)
	assert.Equal(t, entry.ID, ev.EntryID)
}

func TestUpdateStatus_NoteOverridesGeneratedText(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := storedOrder()

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), order.OrderID, constants.StatusPORejected, "price too high", testActor)
	require.NoError(t, err)
	assert.Equal(t, "price too high", got.AuditLogs[0].Note)
	assert.Equal(t, "price too high", got.Timeline[0].Details)
}

func TestUpdateStatus_SameStatusStillRecorded(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := storedOrder()

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), order.OrderID, constants.StatusPOReceivedFromClient, "", testActor)
	require.NoError(t, err)
	assert.Len(t, got.AuditLogs, 1)
	assert.Len(t, got.Timeline, 1)
}

func TestUpdateStatus_UnknownStatusRejectedBeforeLookup(t *testing.T) {
	svc, _, pub := newLifecycleService(t)

	_, err := svc.UpdateStatus(context.Background(), "ORD-2025-001", "Shipped_By_Owl", "", testActor)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Empty(t, pub.events)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	svc, repo, pub := newLifecycleService(t)

	repo.EXPECT().FindOrder(gomock.Any(), "ORD-404").Return(nil, apperrors.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), "ORD-404", constants.StatusApproved, "", testActor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestUpdateStatus_PersistFailureIsSurfaced(t *testing.T) {
	svc, repo, pub := newLifecycleService(t)
	order := storedOrder()
	storeErr := fmt.Errorf("%w: connection reset", apperrors.ErrPersistence)

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(storeErr)

	got, err := svc.UpdateStatus(context.Background(), order.OrderID, constants.StatusApproved, "", testActor)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Empty(t, pub.events)
}

func TestAddComment_DefaultsToInternal(t *testing.T) {
	svc, repo, pub := newLifecycleService(t)
	order := storedOrder()

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.AddComment(context.Background(), order.OrderID, "Supplier confirmed stock", nil, testActor)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)

	c := got.Comments[0]
	assert.Equal(t, "comment-id1", c.ID)
	assert.True(t, c.IsInternal)
	assert.Equal(t, "Priya Shah", c.UserName)
	assert.Empty(t, got.AuditLogs)
	assert.Equal(t, constants.StatusPOReceivedFromClient, got.Status)
	require.Len(t, pub.events, 1)
}

func TestAddComment_ExternalAndEmptyMessage(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := storedOrder()
	external := false

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.AddComment(context.Background(), order.OrderID, "ETA shared with client", &external, testActor)
	require.NoError(t, err)
	assert.False(t, got.Comments[0].IsInternal)

	_, err = svc.AddComment(context.Background(), order.OrderID, "", nil, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddComment_PreservesOrderAcrossCalls(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := storedOrder()

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil).Times(3)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.AddComment(context.Background(), order.OrderID, msg, nil, testActor)
		require.NoError(t, err)
	}

	require.Len(t, order.Comments, 3)
	assert.Equal(t, "first", order.Comments[0].Message)
	assert.Equal(t, "third", order.Comments[2].Message)
	assert.NotEqual(t, order.Comments[0].ID, order.Comments[1].ID)
}

func TestAddTimelineEvent_SnapshotsCurrentStatus(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := storedOrder()
	order.Status = constants.StatusAwaitingCOA

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.AddTimelineEvent(context.Background(), order.OrderID, "COA requested", "Asked supplier for COA", nil, testActor)
	require.NoError(t, err)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, constants.StatusAwaitingCOA, got.Timeline[0].Status)
	assert.Equal(t, "timeline-id1", got.Timeline[0].ID)
}

func TestAddTimelineEvent_ExplicitStatusLeavesOrderStatus(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := storedOrder()
	explicit := constants.StatusInTransit

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.AddTimelineEvent(context.Background(), order.OrderID, "Shipment booked", "", &explicit, testActor)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInTransit, got.Timeline[0].Status)
	assert.Equal(t, constants.StatusPOReceivedFromClient, got.Status)
	assert.Empty(t, got.AuditLogs)
}

func TestAddTimelineEvent_RejectsMissingLabel(t *testing.T) {
	svc, _, _ := newLifecycleService(t)

	_, err := svc.AddTimelineEvent(context.Background(), "ORD-2025-001", "", "details", nil, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAttachDocument_OverwritesSameType(t *testing.T) {
	svc, repo, pub := newLifecycleService(t)
	order := storedOrder()

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil).Times(2)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := svc.AttachDocument(context.Background(), order.OrderID, constants.DocCustomerPO, "data:application/pdf;base64,AAAA", "po-v1.pdf", "", testActor)
	require.NoError(t, err)
	got, err := svc.AttachDocument(context.Background(), order.OrderID, constants.DocCustomerPO, "data:application/pdf;base64,BBBBBB", "po-v2.pdf", "application/pdf", testActor)
	require.NoError(t, err)

	require.Len(t, got.Documents, 1)
	doc := got.Documents[constants.DocCustomerPO]
	assert.Equal(t, "po-v2.pdf", doc.Filename)
	assert.Equal(t, "doc_id2", doc.ID)
	assert.Equal(t, len("data:application/pdf;base64,BBBBBB"), doc.FileSize)
	assert.Equal(t, testActor, doc.UploadedBy)
	assert.Len(t, pub.events, 2)
}

func TestAttachDocument_DefaultMimeTypeAndNilMap(t *testing.T) {
	svc, repo, _ := newLifecycleService(t)
	order := &entities.Order{OrderID: "ORD-2025-002", Status: constants.StatusApproved}

	repo.EXPECT().FindOrder(gomock.Any(), gomock.Any()).Return(order, nil)
	repo.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.AttachDocument(context.Background(), order.OrderID, constants.DocQuotation, "abc", "quote.pdf", "", testActor)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultDocumentMimeType, got.Documents[constants.DocQuotation].MimeType)
}

func TestAttachDocument_UnknownTypeRejected(t *testing.T) {
	svc, _, _ := newLifecycleService(t)

	_, err := svc.AttachDocument(context.Background(), "ORD-2025-001", "invoiceScan", "abc", "x.pdf", "", testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCommentAndTimelineOnSameOrder_LeaveAuditUntouched(t *testing.T) {
	svc, repo, pub := newLifecycleService(t)
	order := storedOrder()
	order.AuditLogs = []entities.AuditLog{{FieldChanged: "status", OldValue: "a", NewValue: "b"}}
	auditBefore := append([]entities.AuditLog(nil), order.AuditLogs...)

	repo.EXPECT().FindOrder(gomock.Any(), order.OrderID).Return(order, nil).Times(2)
	repo.EXPECT().SaveOrder(gomock.Any(), order).Return(nil).Times(2)

	_, err := svc.AddComment(context.Background(), order.OrderID, "Supplier confirmed dispatch", nil, testActor)
	require.NoError(t, err)
	got, err := svc.AddTimelineEvent(context.Background(), order.OrderID, "Vessel booked", "MV Aurora", nil, testActor)
	require.NoError(t, err)

	require.Len(t, got.Comments, 1)
	assert.Equal(t, "comment-id1", got.Comments[0].ID)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, "timeline-id2", got.Timeline[0].ID)
	assert.Equal(t, constants.StatusPOReceivedFromClient, got.Timeline[0].Status)
	assert.Equal(t, auditBefore, got.AuditLogs)
	assert.Equal(t, constants.StatusPOReceivedFromClient, got.Status)
	assert.Len(t, pub.events, 2)
}
