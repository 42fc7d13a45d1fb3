package dto

import "github.com/aarondl/null/v8"

// MaterialDTO holds the attributes shared by create and update. On update
// only non-null fields overwrite the stored record.
type MaterialDTO struct {
	SKU                      null.String  `json:"sku"`
	UPC                      null.String  `json:"upc"`
	HSNSAC                   null.String  `json:"hsnSac"`
	CategoryName             null.String  `json:"categoryName"`
	ParentCategory           null.String  `json:"parentCategory"`
	ProductType              null.String  `json:"productType"`
	UnitName                 null.String  `json:"unitName"`
	Taxable                  *bool        `json:"taxable"`
	IntraStateTaxRate        null.Float64 `json:"intraStateTaxRate"`
	InterStateTaxRate        null.Float64 `json:"interStateTaxRate"`
	InventoryAccount         null.String  `json:"inventoryAccount"`
	InventoryValuationMethod null.String  `json:"inventoryValuationMethod"`
	ReorderPoint             null.Int     `json:"reorderPoint" validate:"omitempty,gte=0"`
	Vendor                   null.String  `json:"vendor"`
	SupplierID               null.Uint64  `json:"supplierId"`
	WarehouseName            null.String  `json:"warehouseName"`
	OpeningStock             null.Float64 `json:"openingStock"`
	StockOnHand              *int         `json:"stockOnHand" validate:"omitempty,gte=0"`
	ItemType                 null.String  `json:"itemType"`
	Status                   string       `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type CreateMaterialDTO struct {
	ItemID   string `json:"itemId" validate:"required,max=100"`
	ItemName string `json:"itemName" validate:"required,max=255"`
	MaterialDTO
}

type UpdateMaterialDTO struct {
	ItemID   *string `json:"itemId" validate:"omitempty,min=1,max=100"`
	ItemName *string `json:"itemName" validate:"omitempty,min=1,max=255"`
	MaterialDTO
}
