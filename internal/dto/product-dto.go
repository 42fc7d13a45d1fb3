package dto

import "github.com/aarondl/null/v8"

type ProductDTO struct {
	ProductID         string       `json:"productId" validate:"omitempty,max=50"`
	ItemID            null.String  `json:"itemId"`
	ItemName          string       `json:"itemName" validate:"required,max=255"`
	SKU               null.String  `json:"sku"`
	UPC               null.String  `json:"upc"`
	HSNSAC            null.String  `json:"hsnSac"`
	CategoryName      null.String  `json:"categoryName"`
	ProductType       null.String  `json:"productType"`
	UnitName          null.String  `json:"unitName"`
	Vendor            null.String  `json:"vendor"`
	WarehouseName     null.String  `json:"warehouseName"`
	Status            string       `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Taxable           *bool        `json:"taxable"`
	IntraStateTaxRate null.Float64 `json:"intraStateTaxRate"`
	InterStateTaxRate null.Float64 `json:"interStateTaxRate"`
	InventoryAccount  null.String  `json:"inventoryAccount"`
	ReorderPoint      null.Float64 `json:"reorderPoint"`
	StockOnHand       *float64     `json:"stockOnHand" validate:"omitempty,gte=0"`
	ItemType          null.String  `json:"itemType"`
	IsActive          *bool        `json:"isActive"`
}

type UpdateProductDTO struct {
	ItemID            null.String  `json:"itemId"`
	ItemName          *string      `json:"itemName" validate:"omitempty,min=1,max=255"`
	SKU               null.String  `json:"sku"`
	UPC               null.String  `json:"upc"`
	HSNSAC            null.String  `json:"hsnSac"`
	CategoryName      null.String  `json:"categoryName"`
	ProductType       null.String  `json:"productType"`
	UnitName          null.String  `json:"unitName"`
	Vendor            null.String  `json:"vendor"`
	WarehouseName     null.String  `json:"warehouseName"`
	Status            *string      `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Taxable           *bool        `json:"taxable"`
	IntraStateTaxRate null.Float64 `json:"intraStateTaxRate"`
	InterStateTaxRate null.Float64 `json:"interStateTaxRate"`
	InventoryAccount  null.String  `json:"inventoryAccount"`
	ReorderPoint      null.Float64 `json:"reorderPoint"`
	StockOnHand       *float64     `json:"stockOnHand" validate:"omitempty,gte=0"`
	ItemType          null.String  `json:"itemType"`
	IsActive          *bool        `json:"isActive"`
}

type BulkProductsDTO struct {
	Products []ProductDTO `json:"products" validate:"required,min=1,dive"`
}

type BulkCreateResultDTO struct {
	Requested int `json:"requested"`
	Created   int `json:"created"`
}
