package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Supplier struct {
	ID              uint64      `json:"id"`
	SupplierID      string      `json:"supplierId"`
	Name            string      `json:"name"`
	Address         null.String `json:"address"`
	City            null.String `json:"city"`
	State           null.String `json:"state"`
	Country         string      `json:"country"`
	Email           null.String `json:"email"`
	Phone           null.String `json:"phone"`
	GSTIN           null.String `json:"gstin"`
	SourceOfSupply  null.String `json:"sourceOfSupply"`
	BillingAddress  null.String `json:"billingAddress"`
	BillingCity     null.String `json:"billingCity"`
	BillingState    null.String `json:"billingState"`
	BillingCountry  null.String `json:"billingCountry"`
	ShippingAddress null.String `json:"shippingAddress"`
	ShippingCity    null.String `json:"shippingCity"`
	ShippingState   null.String `json:"shippingState"`
	ShippingCountry null.String `json:"shippingCountry"`
	Specialties     []string    `json:"specialties"`
	Rating          float64     `json:"rating"`
	LastOrderDate   null.Time   `json:"lastOrderDate"`
	IsActive        bool        `json:"isActive"`
	Notes           null.String `json:"notes"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// SupplierSummary is the slice of a supplier joined onto materials.
type SupplierSummary struct {
	ID         uint64 `json:"id"`
	SupplierID string `json:"supplierId"`
	Name       string `json:"name"`
}

type SupplierStats struct {
	Total     uint64            `json:"total"`
	Active    uint64            `json:"active"`
	Inactive  uint64            `json:"inactive"`
	ByCountry map[string]uint64 `json:"byCountry"`
}
