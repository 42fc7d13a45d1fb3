package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

type MaterialServiceInterface interface {
	GetMaterials(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error)
	FindMaterial(ctx context.Context, id uint64) (*entities.Material, error)
	FindByItemID(ctx context.Context, itemID string) (*entities.Material, error)
	Categories(ctx context.Context) ([]string, error)
	CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*entities.Material, error)
	UpdateMaterial(ctx context.Context, id uint64, payload dto.UpdateMaterialDTO) (*entities.Material, error)
	DeleteMaterial(ctx context.Context, id uint64) error
}

type MaterialService struct {
	repo      repositories.MaterialRepositoryInterface
	suppliers repositories.SupplierRepositoryInterface
	logger    *zap.Logger
}

func NewMaterialService(
	repo repositories.MaterialRepositoryInterface,
	suppliers repositories.SupplierRepositoryInterface,
	logger *zap.Logger,
) MaterialServiceInterface {
	return &MaterialService{repo: repo, suppliers: suppliers, logger: logger}
}

func (s *MaterialService) GetMaterials(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error) {
	return s.repo.GetMaterials(ctx, filter)
}

func (s *MaterialService) FindMaterial(ctx context.Context, id uint64) (*entities.Material, error) {
	return s.repo.FindMaterial(ctx, id)
}

func (s *MaterialService) FindByItemID(ctx context.Context, itemID string) (*entities.Material, error) {
	return s.repo.FindByItemID(ctx, itemID)
}

func (s *MaterialService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *MaterialService) CreateMaterial(ctx context.Context, p dto.CreateMaterialDTO) (*entities.Material, error) {
	if _, err := s.repo.FindByItemID(ctx, p.ItemID); err == nil {
		return nil, fmt.Errorf("%w: material with itemId %s", apperrors.ErrConflict, p.ItemID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	m := &entities.Material{
		ItemID:   strings.TrimSpace(p.ItemID),
		ItemName: strings.TrimSpace(p.ItemName),
		Status:   constants.DefaultMaterialStatus,
		Taxable:  true,
	}
	applyMaterialAttributes(m, p.MaterialDTO)

	if err := s.resolveSupplier(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.CreateMaterial(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id uint64, p dto.UpdateMaterialDTO) (*entities.Material, error) {
	m, err := s.repo.FindMaterial(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.ItemID != nil {
		m.ItemID = strings.TrimSpace(*p.ItemID)
	}
	if p.ItemName != nil {
		m.ItemName = strings.TrimSpace(*p.ItemName)
	}
	vendorChanged := p.Vendor.Valid && p.Vendor.String != m.Vendor.String
	applyMaterialAttributes(m, p.MaterialDTO)
	if vendorChanged && !p.SupplierID.Valid {
		m.SupplierID = null.Uint64{}
	}

	if err := s.resolveSupplier(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateMaterial(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uint64) error {
	return s.repo.DeleteMaterial(ctx, id)
}

// resolveSupplier links the material to a supplier named like its vendor
// when no supplier id was given. An unknown vendor leaves the link empty.
func (s *MaterialService) resolveSupplier(ctx context.Context, m *entities.Material) error {
	if m.SupplierID.Valid || !m.Vendor.Valid || strings.TrimSpace(m.Vendor.String) == "" {
		return nil
	}
	supplier, err := s.suppliers.FindByName(ctx, strings.TrimSpace(m.Vendor.String))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Debug("no supplier matches material vendor", zap.String("vendor", m.Vendor.String))
			return nil
		}
		return err
	}
	m.SupplierID = null.Uint64From(supplier.ID)
	return nil
}

func applyMaterialAttributes(m *entities.Material, p dto.MaterialDTO) {
	mergeNullStrings([]nullStringPatch{
		{&m.SKU, p.SKU},
		{&m.UPC, p.UPC},
		{&m.HSNSAC, p.HSNSAC},
		{&m.CategoryName, p.CategoryName},
		{&m.ParentCategory, p.ParentCategory},
		{&m.ProductType, p.ProductType},
		{&m.UnitName, p.UnitName},
		{&m.InventoryAccount, p.InventoryAccount},
		{&m.InventoryValuationMethod, p.InventoryValuationMethod},
		{&m.Vendor, p.Vendor},
		{&m.WarehouseName, p.WarehouseName},
		{&m.ItemType, p.ItemType},
	})
	if p.Taxable != nil {
		m.Taxable = *p.Taxable
	}
	if p.IntraStateTaxRate.Valid {
		m.IntraStateTaxRate = p.IntraStateTaxRate
	}
	if p.InterStateTaxRate.Valid {
		m.InterStateTaxRate = p.InterStateTaxRate
	}
	if p.ReorderPoint.Valid {
		m.ReorderPoint = p.ReorderPoint
	}
	if p.SupplierID.Valid {
		m.SupplierID = p.SupplierID
	}
	if p.OpeningStock.Valid {
		m.OpeningStock = p.OpeningStock
	}
	if p.StockOnHand != nil {
		m.StockOnHand = *p.StockOnHand
	}
	if p.Status != "" {
		m.Status = p.Status
	}
}
