package dto

import (
	"pharma-order-system/internal/entities"
)

type CreateOrderDTO struct {
	OrderID                  string                       `json:"orderId" validate:"required,max=100"`
	CreatedBy                *entities.Actor              `json:"createdBy"`
	AssignedTo               *entities.Actor              `json:"assignedTo"`
	Customer                 *entities.ContactInfo        `json:"customer" validate:"required"`
	Supplier                 *entities.ContactInfo        `json:"supplier"`
	MaterialName             string                       `json:"materialName" validate:"required"`
	Materials                []entities.MaterialItem      `json:"materials"`
	Quantity                 *entities.Quantity           `json:"quantity" validate:"required"`
	PriceToCustomer          *entities.Price              `json:"priceToCustomer" validate:"required"`
	PriceFromSupplier        *entities.Price              `json:"priceFromSupplier" validate:"required"`
	Status                   string                       `json:"status" validate:"omitempty,order_status"`
	AdvancePayment           *entities.AdvancePayment     `json:"advancePayment"`
	ApprovalRequests         []entities.ApprovalRequest   `json:"approvalRequests"`
	PONumber                 string                       `json:"poNumber"`
	DeliveryTerms            string                       `json:"deliveryTerms"`
	Incoterms                string                       `json:"incoterms"`
	ETA                      string                       `json:"eta"`
	Notes                    string                       `json:"notes"`
	FreightHandler           *entities.FreightHandlerInfo `json:"freightHandler"`
	HSNCode                  string                       `json:"hsnCode"`
	EnquiryNo                string                       `json:"enquiryNo"`
	UPC                      string                       `json:"upc"`
	EAN                      string                       `json:"ean"`
	MPN                      string                       `json:"mpn"`
	ISBN                     string                       `json:"isbn"`
	InventoryAccount         string                       `json:"inventoryAccount"`
	InventoryValuationMethod string                       `json:"inventoryValuationMethod"`
	SupplierPOGenerated      bool                         `json:"supplierPOGenerated"`
	SupplierPOSent           bool                         `json:"supplierPOSent"`
	PaymentDetails           *entities.PaymentDetails     `json:"paymentDetails"`
	RFID                     string                       `json:"rfid"`
	Entity                   string                       `json:"entity" validate:"omitempty,oneof=HRV NHG"`
}

// UpdateOrderDTO replaces only the fields that are present. History
// collections and status have their own endpoints.
type UpdateOrderDTO struct {
	AssignedTo               *entities.Actor              `json:"assignedTo"`
	Customer                 *entities.ContactInfo        `json:"customer"`
	Supplier                 *entities.ContactInfo        `json:"supplier"`
	MaterialName             *string                      `json:"materialName" validate:"omitempty,min=1"`
	Materials                *[]entities.MaterialItem     `json:"materials"`
	Quantity                 *entities.Quantity           `json:"quantity"`
	PriceToCustomer          *entities.Price              `json:"priceToCustomer"`
	PriceFromSupplier        *entities.Price              `json:"priceFromSupplier"`
	AdvancePayment           *entities.AdvancePayment     `json:"advancePayment"`
	ApprovalRequests         *[]entities.ApprovalRequest  `json:"approvalRequests"`
	PONumber                 *string                      `json:"poNumber"`
	DeliveryTerms            *string                      `json:"deliveryTerms"`
	Incoterms                *string                      `json:"incoterms"`
	ETA                      *string                      `json:"eta"`
	Notes                    *string                      `json:"notes"`
	FreightHandler           *entities.FreightHandlerInfo `json:"freightHandler"`
	HSNCode                  *string                      `json:"hsnCode"`
	EnquiryNo                *string                      `json:"enquiryNo"`
	UPC                      *string                      `json:"upc"`
	EAN                      *string                      `json:"ean"`
	MPN                      *string                      `json:"mpn"`
	ISBN                     *string                      `json:"isbn"`
	InventoryAccount         *string                      `json:"inventoryAccount"`
	InventoryValuationMethod *string                      `json:"inventoryValuationMethod"`
	SupplierPOGenerated      *bool                        `json:"supplierPOGenerated"`
	SupplierPOSent           *bool                        `json:"supplierPOSent"`
	PaymentDetails           *entities.PaymentDetails     `json:"paymentDetails"`
	RFID                     *string                      `json:"rfid"`
	Entity                   *string                      `json:"entity" validate:"omitempty,oneof=HRV NHG"`
}

// OrderSectionsDTO answers which detail sections apply to an order.
type OrderSectionsDTO struct {
	OrderID  string   `json:"orderId"`
	Status   string   `json:"status"`
	Sections []string `json:"sections"`
}
