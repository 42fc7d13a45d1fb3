package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/customvalidator"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/utils"
)

type stubLifecycle struct {
	gotOrderID string
	gotStatus  constants.OrderStatus
	gotActor   entities.Actor
	gotDocType constants.DocumentType
	err        error
}

func (s *stubLifecycle) result(orderID string) (*entities.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	o := &entities.Order{OrderID: orderID, Status: s.gotStatus}
	o.EnsureCollections()
	return o, nil
}

func (s *stubLifecycle) UpdateStatus(_ context.Context, orderID string, newStatus constants.OrderStatus, _ string, actor entities.Actor) (*entities.Order, error) {
	s.gotOrderID, s.gotStatus, s.gotActor = orderID, newStatus, actor
	return s.result(orderID)
}

func (s *stubLifecycle) AddComment(_ context.Context, orderID, _ string, _ *bool, actor entities.Actor) (*entities.Order, error) {
	s.gotOrderID, s.gotActor = orderID, actor
	return s.result(orderID)
}

func (s *stubLifecycle) AddTimelineEvent(_ context.Context, orderID, _, _ string, _ *constants.OrderStatus, actor entities.Actor) (*entities.Order, error) {
	s.gotOrderID, s.gotActor = orderID, actor
	return s.result(orderID)
}

func (s *stubLifecycle) AttachDocument(_ context.Context, orderID string, docType constants.DocumentType, _, _, _ string, actor entities.Actor) (*entities.Order, error) {
	s.gotOrderID, s.gotDocType, s.gotActor = orderID, docType, actor
	return s.result(orderID)
}

var managerClaims = &dto.UserClaims{ID: 3, UserID: "user-3", Name: "Meera Iyer", Role: constants.RoleManager}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e := echo.New()
	e.Validator = utils.NewValidator(v)
	return e
}

func serve(e *echo.Echo, method, path, body string, claims *dto.UserClaims, handler echo.HandlerFunc, paramValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if claims != nil {
		req = req.WithContext(utils.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderId")
	c.SetParamValues(paramValue)
	_ = handler(c)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUpdateStatusHandler_PassesActorFromClaims(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubLifecycle{}
	ctrl := NewOrderLifecycleController(svc, zap.NewNop())

	rec := serve(e, http.MethodPatch, "/api/orders/ORD-7/status", `{"newStatus":"Approved","note":"ok"}`,
		managerClaims, ctrl.UpdateStatus, "ORD-7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ORD-7", svc.gotOrderID)
	assert.Equal(t, constants.StatusApproved, svc.gotStatus)
	assert.Equal(t, entities.Actor{UserID: "user-3", Name: "Meera Iyer", Role: constants.RoleManager}, svc.gotActor)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["status"])
	order := body["body"].(map[string]interface{})
	assert.Equal(t, "ORD-7", order["orderId"])
	assert.Equal(t, []interface{}{}, order["comments"])
}

func TestUpdateStatusHandler_UnknownStatusIs400(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubLifecycle{}
	ctrl := NewOrderLifecycleController(svc, zap.NewNop())

	rec := serve(e, http.MethodPatch, "/api/orders/ORD-7/status", `{"newStatus":"Lost_At_Sea"}`,
		managerClaims, ctrl.UpdateStatus, "ORD-7")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.gotOrderID)
}

func TestUpdateStatusHandler_MissingClaimsIs401(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewOrderLifecycleController(&stubLifecycle{}, zap.NewNop())

	rec := serve(e, http.MethodPatch, "/api/orders/ORD-7/status", `{"newStatus":"Approved"}`,
		nil, ctrl.UpdateStatus, "ORD-7")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddCommentHandler_NotFoundIs404(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewOrderLifecycleController(&stubLifecycle{err: apperrors.ErrNotFound}, zap.NewNop())

	rec := serve(e, http.MethodPost, "/api/orders/ORD-404/comments", `{"message":"hello"}`,
		managerClaims, ctrl.AddComment, "ORD-404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCommentHandler_Created(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubLifecycle{}
	ctrl := NewOrderLifecycleController(svc, zap.NewNop())

	rec := serve(e, http.MethodPost, "/api/orders/ORD-8/comments", `{"message":"Supplier called back","isInternal":false}`,
		managerClaims, ctrl.AddComment, "ORD-8")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ORD-8", svc.gotOrderID)
}

func TestAttachDocumentHandler_ValidatesType(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubLifecycle{}
	ctrl := NewOrderLifecycleController(svc, zap.NewNop())

	rec := serve(e, http.MethodPost, "/api/orders/ORD-9/documents",
		`{"documentType":"coaPreShipment","documentData":"data:application/pdf;base64,AA==","filename":"coa.pdf"}`,
		managerClaims, ctrl.AttachDocument, "ORD-9")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constants.DocCOAPreShipment, svc.gotDocType)

	rec = serve(e, http.MethodPost, "/api/orders/ORD-9/documents",
		`{"documentType":"selfie","documentData":"x","filename":"me.png"}`,
		managerClaims, ctrl.AttachDocument, "ORD-9")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddTimelineHandler_PersistFailureIs500(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewOrderLifecycleController(&stubLifecycle{err: apperrors.ErrPersistence}, zap.NewNop())

	rec := serve(e, http.MethodPost, "/api/orders/ORD-9/timeline", `{"event":"Booked vessel"}`,
		managerClaims, ctrl.AddTimelineEvent, "ORD-9")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
