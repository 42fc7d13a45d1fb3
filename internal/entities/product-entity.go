package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Product struct {
	ID                uint64       `json:"id"`
	ProductID         string       `json:"productId"`
	ItemID            null.String  `json:"itemId"`
	ItemName          string       `json:"itemName"`
	SKU               null.String  `json:"sku"`
	UPC               null.String  `json:"upc"`
	HSNSAC            null.String  `json:"hsnSac"`
	CategoryName      null.String  `json:"categoryName"`
	ProductType       null.String  `json:"productType"`
	UnitName          null.String  `json:"unitName"`
	Vendor            null.String  `json:"vendor"`
	WarehouseName     null.String  `json:"warehouseName"`
	Status            string       `json:"status"`
	Taxable           bool         `json:"taxable"`
	IntraStateTaxRate null.Float64 `json:"intraStateTaxRate"`
	InterStateTaxRate null.Float64 `json:"interStateTaxRate"`
	InventoryAccount  null.String  `json:"inventoryAccount"`
	ReorderPoint      null.Float64 `json:"reorderPoint"`
	StockOnHand       float64      `json:"stockOnHand"`
	ItemType          null.String  `json:"itemType"`
	IsActive          bool         `json:"isActive"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}
