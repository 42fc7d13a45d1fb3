package services

import (
	"context"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/types"
)

const (
	supplierSearchDefaultLimit = 50
	supplierSearchQueryLimit   = 100
)

type SupplierServiceInterface interface {
	GetSuppliers(ctx context.Context, filter types.Filter) ([]entities.Supplier, uint64, error)
	SearchSuppliers(ctx context.Context, query string) ([]entities.Supplier, error)
	Stats(ctx context.Context) (*entities.SupplierStats, error)
	FindSupplier(ctx context.Context, supplierID string) (*entities.Supplier, error)
	CreateSupplier(ctx context.Context, payload dto.CreateSupplierDTO) (*entities.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, payload dto.UpdateSupplierDTO) (*entities.Supplier, error)
	DeactivateSupplier(ctx context.Context, supplierID string) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

type SupplierService struct {
	repo   repositories.SupplierRepositoryInterface
	logger *zap.Logger
}

func NewSupplierService(repo repositories.SupplierRepositoryInterface, logger *zap.Logger) SupplierServiceInterface {
	return &SupplierService{repo: repo, logger: logger}
}

func (s *SupplierService) GetSuppliers(ctx context.Context, filter types.Filter) ([]entities.Supplier, uint64, error) {
	return s.repo.GetSuppliers(ctx, filter)
}

// SearchSuppliers returns active suppliers only, capped at 50 rows without
// a query and 100 with one.
func (s *SupplierService) SearchSuppliers(ctx context.Context, query string) ([]entities.Supplier, error) {
	query = strings.TrimSpace(query)
	limit := uint64(supplierSearchDefaultLimit)
	if query != "" {
		limit = supplierSearchQueryLimit
	}
	return s.repo.SearchActive(ctx, query, limit)
}

func (s *SupplierService) Stats(ctx context.Context) (*entities.SupplierStats, error) {
	return s.repo.Stats(ctx)
}

func (s *SupplierService) FindSupplier(ctx context.Context, supplierID string) (*entities.Supplier, error) {
	return s.repo.FindBySupplierID(ctx, strings.TrimSpace(supplierID))
}

func (s *SupplierService) CreateSupplier(ctx context.Context, p dto.CreateSupplierDTO) (*entities.Supplier, error) {
	supplierID := strings.TrimSpace(p.SupplierID)
	if supplierID == "" {
		var err error
		supplierID, err = generatePublicID(ctx, s.repo, constants.SupplierIDPrefix, constants.SupplierIDWidth)
		if err != nil {
			return nil, err
		}
	}

	supplier := &entities.Supplier{
		SupplierID:      supplierID,
		Name:            strings.TrimSpace(p.Name),
		Address:         p.Address,
		City:            p.City,
		State:           p.State,
		Country:         orDefault(p.Country, constants.DefaultSupplierCountry),
		Email:           p.Email,
		Phone:           p.Phone,
		GSTIN:           p.GSTIN,
		SourceOfSupply:  p.SourceOfSupply,
		BillingAddress:  p.BillingAddress,
		BillingCity:     p.BillingCity,
		BillingState:    p.BillingState,
		BillingCountry:  p.BillingCountry,
		ShippingAddress: p.ShippingAddress,
		ShippingCity:    p.ShippingCity,
		ShippingState:   p.ShippingState,
		ShippingCountry: p.ShippingCountry,
		Specialties:     p.Specialties,
		IsActive:        p.IsActive == nil || *p.IsActive,
		Notes:           p.Notes,
	}
	if supplier.Specialties == nil {
		supplier.Specialties = []string{}
	}
	if p.Rating != nil {
		supplier.Rating = *p.Rating
	}

	if err := s.repo.CreateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	s.logger.Info("supplier created", zap.String("supplierId", supplier.SupplierID))
	return supplier, nil
}

// UpdateSupplier changes the fields present in payload. The public
// supplierId never changes.
func (s *SupplierService) UpdateSupplier(ctx context.Context, supplierID string, p dto.UpdateSupplierDTO) (*entities.Supplier, error) {
	supplier, err := s.FindSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		supplier.Name = strings.TrimSpace(*p.Name)
	}
	if p.Country != nil {
		supplier.Country = orDefault(*p.Country, constants.DefaultSupplierCountry)
	}
	if p.Specialties != nil {
		supplier.Specialties = p.Specialties
	}
	if p.Rating != nil {
		supplier.Rating = *p.Rating
	}
	if p.IsActive != nil {
		supplier.IsActive = *p.IsActive
	}
	if p.LastOrderDate.Valid {
		supplier.LastOrderDate = p.LastOrderDate
	}

	mergeNullStrings([]nullStringPatch{
		{&supplier.Address, p.Address},
		{&supplier.City, p.City},
		{&supplier.State, p.State},
		{&supplier.Email, p.Email},
		{&supplier.Phone, p.Phone},
		{&supplier.GSTIN, p.GSTIN},
		{&supplier.SourceOfSupply, p.SourceOfSupply},
		{&supplier.BillingAddress, p.BillingAddress},
		{&supplier.BillingCity, p.BillingCity},
		{&supplier.BillingState, p.BillingState},
		{&supplier.BillingCountry, p.BillingCountry},
		{&supplier.ShippingAddress, p.ShippingAddress},
		{&supplier.ShippingCity, p.ShippingCity},
		{&supplier.ShippingState, p.ShippingState},
		{&supplier.ShippingCountry, p.ShippingCountry},
		{&supplier.Notes, p.Notes},
	})

	if err := s.repo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeactivateSupplier(ctx context.Context, supplierID string) error {
	supplier, err := s.FindSupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	return s.repo.DeactivateSupplier(ctx, supplier.ID)
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	supplier, err := s.FindSupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSupplier(ctx, supplier.ID); err != nil {
		return err
	}
	s.logger.Warn("supplier hard-deleted", zap.String("supplierId", supplier.SupplierID))
	return nil
}

// nullStringPatch copies src into dst when src carries a value.
type nullStringPatch struct {
	dst *null.String
	src null.String
}

func mergeNullStrings(patches []nullStringPatch) {
	for _, p := range patches {
		if p.src.Valid {
			*p.dst = p.src
		}
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
