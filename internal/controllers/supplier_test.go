package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

type stubSuppliers struct {
	lookedUp string
}

func (s *stubSuppliers) GetSuppliers(context.Context, types.Filter) ([]entities.Supplier, uint64, error) {
	return nil, 0, nil
}

func (s *stubSuppliers) SearchSuppliers(context.Context, string) ([]entities.Supplier, error) {
	return nil, nil
}

func (s *stubSuppliers) Stats(context.Context) (*entities.SupplierStats, error) { return nil, nil }

func (s *stubSuppliers) FindSupplier(_ context.Context, supplierID string) (*entities.Supplier, error) {
	s.lookedUp = supplierID
	if supplierID != "SUP001" {
		return nil, apperrors.ErrNotFound
	}
	return &entities.Supplier{ID: 42, SupplierID: supplierID, Name: "Hetero Labs"}, nil
}

func (s *stubSuppliers) CreateSupplier(context.Context, dto.CreateSupplierDTO) (*entities.Supplier, error) {
	return nil, nil
}

func (s *stubSuppliers) UpdateSupplier(_ context.Context, supplierID string, _ dto.UpdateSupplierDTO) (*entities.Supplier, error) {
	return s.FindSupplier(context.Background(), supplierID)
}

func (s *stubSuppliers) DeactivateSupplier(_ context.Context, supplierID string) error {
	_, err := s.FindSupplier(context.Background(), supplierID)
	return err
}

func (s *stubSuppliers) DeleteSupplier(_ context.Context, supplierID string) error {
	_, err := s.FindSupplier(context.Background(), supplierID)
	return err
}

func TestFindSupplierHandler_ByPublicID(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubSuppliers{}
	ctrl := NewSupplierController(svc, zap.NewNop())
	e.GET("/api/suppliers/:supplierId", ctrl.FindSupplier)
	e.DELETE("/api/suppliers/:supplierId", ctrl.DeactivateSupplier)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suppliers/SUP001", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SUP001", svc.lookedUp)
	body := decodeEnvelope(t, rec)
	supplier := body["body"].(map[string]interface{})
	assert.Equal(t, "SUP001", supplier["supplierId"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suppliers/SUP404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/suppliers/SUP001", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
