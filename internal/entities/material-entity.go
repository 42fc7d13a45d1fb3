package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Material struct {
	ID                       uint64           `json:"id"`
	ItemID                   string           `json:"itemId"`
	ItemName                 string           `json:"itemName"`
	SKU                      null.String      `json:"sku"`
	UPC                      null.String      `json:"upc"`
	HSNSAC                   null.String      `json:"hsnSac"`
	CategoryName             null.String      `json:"categoryName"`
	ParentCategory           null.String      `json:"parentCategory"`
	ProductType              null.String      `json:"productType"`
	UnitName                 null.String      `json:"unitName"`
	Taxable                  bool             `json:"taxable"`
	IntraStateTaxRate        null.Float64     `json:"intraStateTaxRate"`
	InterStateTaxRate        null.Float64     `json:"interStateTaxRate"`
	InventoryAccount         null.String      `json:"inventoryAccount"`
	InventoryValuationMethod null.String      `json:"inventoryValuationMethod"`
	ReorderPoint             null.Int         `json:"reorderPoint"`
	Vendor                   null.String      `json:"vendor"`
	SupplierID               null.Uint64      `json:"supplierId"`
	Supplier                 *SupplierSummary `json:"supplier,omitempty"`
	WarehouseName            null.String      `json:"warehouseName"`
	OpeningStock             null.Float64     `json:"openingStock"`
	StockOnHand              int              `json:"stockOnHand"`
	ItemType                 null.String      `json:"itemType"`
	Status                   string           `json:"status"`
	CreatedAt                time.Time        `json:"createdAt"`
	UpdatedAt                time.Time        `json:"updatedAt"`
}
