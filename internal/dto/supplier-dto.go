package dto

import "github.com/aarondl/null/v8"

type CreateSupplierDTO struct {
	SupplierID      string      `json:"supplierId" validate:"omitempty,max=50"`
	Name            string      `json:"name" validate:"required,max=255"`
	Address         null.String `json:"address"`
	City            null.String `json:"city" validate:"omitempty,max=100"`
	State           null.String `json:"state" validate:"omitempty,max=100"`
	Country         string      `json:"country" validate:"omitempty,max=100"`
	Email           null.String `json:"email" validate:"omitempty,email"`
	Phone           null.String `json:"phone" validate:"omitempty,max=50"`
	GSTIN           null.String `json:"gstin" validate:"omitempty,max=20"`
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
	Rating          *float64    `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsActive        *bool       `json:"isActive"`
	Notes           null.String `json:"notes"`
}

// UpdateSupplierDTO never touches supplierId.
type UpdateSupplierDTO struct {
	Name            *string     `json:"name" validate:"omitempty,min=1,max=255"`
	Address         null.String `json:"address"`
	City            null.String `json:"city" validate:"omitempty,max=100"`
	State           null.String `json:"state" validate:"omitempty,max=100"`
	Country         *string     `json:"country" validate:"omitempty,max=100"`
	Email           null.String `json:"email" validate:"omitempty,email"`
	Phone           null.String `json:"phone" validate:"omitempty,max=50"`
	GSTIN           null.String `json:"gstin" validate:"omitempty,max=20"`
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
	Rating          *float64    `json:"rating" validate:"omitempty,gte=0,lte=5"`
	LastOrderDate   null.Time   `json:"lastOrderDate"`
	IsActive        *bool       `json:"isActive"`
	Notes           null.String `json:"notes"`
}
