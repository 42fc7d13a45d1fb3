package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/types"
)

type ProductServiceInterface interface {
	GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error)
	FindProduct(ctx context.Context, productID string) (*entities.Product, error)
	CreateProduct(ctx context.Context, payload dto.ProductDTO) (*entities.Product, error)
	CreateProducts(ctx context.Context, payload dto.BulkProductsDTO) (*dto.BulkCreateResultDTO, error)
	UpdateProduct(ctx context.Context, productID string, payload dto.UpdateProductDTO) (*entities.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type ProductService struct {
	repo   repositories.ProductRepositoryInterface
	logger *zap.Logger
}

func NewProductService(repo repositories.ProductRepositoryInterface, logger *zap.Logger) ProductServiceInterface {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error) {
	return s.repo.GetProducts(ctx, filter)
}

func (s *ProductService) FindProduct(ctx context.Context, productID string) (*entities.Product, error) {
	return s.repo.FindByProductID(ctx, strings.TrimSpace(productID))
}

func (s *ProductService) CreateProduct(ctx context.Context, p dto.ProductDTO) (*entities.Product, error) {
	product := newProduct(p)
	if product.ProductID == "" {
		id, err := generatePublicID(ctx, s.repo, constants.ProductIDPrefix, constants.ProductIDWidth)
		if err != nil {
			return nil, err
		}
		product.ProductID = id
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProducts numbers rows without a productId sequentially after the
// newest stored id. Rows whose productId already exists are skipped.
func (s *ProductService) CreateProducts(ctx context.Context, p dto.BulkProductsDTO) (*dto.BulkCreateResultDTO, error) {
	last, err := s.repo.LastPublicID(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(p.Products))
	for _, item := range p.Products {
		product := newProduct(item)
		if product.ProductID == "" {
			product.ProductID = NextPublicID(constants.ProductIDPrefix, constants.ProductIDWidth, last)
			last = product.ProductID
		}
		products = append(products, *product)
	}

	created, err := s.repo.CreateProducts(ctx, products)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bulk product import finished", zap.Int("requested", len(products)), zap.Int("created", created))
	return &dto.BulkCreateResultDTO{Requested: len(products), Created: created}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, p dto.UpdateProductDTO) (*entities.Product, error) {
	product, err := s.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	mergeNullStrings([]nullStringPatch{
		{&product.ItemID, p.ItemID},
		{&product.SKU, p.SKU},
		{&product.UPC, p.UPC},
		{&product.HSNSAC, p.HSNSAC},
		{&product.CategoryName, p.CategoryName},
		{&product.ProductType, p.ProductType},
		{&product.UnitName, p.UnitName},
		{&product.Vendor, p.Vendor},
		{&product.WarehouseName, p.WarehouseName},
		{&product.InventoryAccount, p.InventoryAccount},
		{&product.ItemType, p.ItemType},
	})
	if p.ItemName != nil {
		product.ItemName = strings.TrimSpace(*p.ItemName)
	}
	if p.Status != nil {
		product.Status = *p.Status
	}
	if p.Taxable != nil {
		product.Taxable = *p.Taxable
	}
	if p.IntraStateTaxRate.Valid {
		product.IntraStateTaxRate = p.IntraStateTaxRate
	}
	if p.InterStateTaxRate.Valid {
		product.InterStateTaxRate = p.InterStateTaxRate
	}
	if p.ReorderPoint.Valid {
		product.ReorderPoint = p.ReorderPoint
	}
	if p.StockOnHand != nil {
		product.StockOnHand = *p.StockOnHand
	}
	if p.IsActive != nil {
		product.IsActive = *p.IsActive
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := s.FindProduct(ctx, productID)
	if err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, product.ID)
}

func newProduct(p dto.ProductDTO) *entities.Product {
	product := &entities.Product{
		ProductID:         strings.TrimSpace(p.ProductID),
		ItemID:            p.ItemID,
		ItemName:          strings.TrimSpace(p.ItemName),
		SKU:               p.SKU,
		UPC:               p.UPC,
		HSNSAC:            p.HSNSAC,
		CategoryName:      p.CategoryName,
		ProductType:       p.ProductType,
		UnitName:          p.UnitName,
		Vendor:            p.Vendor,
		WarehouseName:     p.WarehouseName,
		Status:            orDefault(p.Status, constants.DefaultMaterialStatus),
		Taxable:           p.Taxable == nil || *p.Taxable,
		IntraStateTaxRate: p.IntraStateTaxRate,
		InterStateTaxRate: p.InterStateTaxRate,
		InventoryAccount:  p.InventoryAccount,
		ReorderPoint:      p.ReorderPoint,
		ItemType:          p.ItemType,
		IsActive:          p.IsActive == nil || *p.IsActive,
	}
	if p.StockOnHand != nil {
		product.StockOnHand = *p.StockOnHand
	}
	return product
}
