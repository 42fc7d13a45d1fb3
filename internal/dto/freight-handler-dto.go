package dto

import "github.com/aarondl/null/v8"

type FreightHandlerDTO struct {
	FreightHandlerID string      `json:"freightHandlerId" validate:"omitempty,max=50"`
	Name             string      `json:"name" validate:"required,max=255"`
	Company          null.String `json:"company"`
	Address          null.String `json:"address"`
	Country          string      `json:"country" validate:"omitempty,max=100"`
	Phone            null.String `json:"phone" validate:"omitempty,max=50"`
	GSTIN            null.String `json:"gstin" validate:"omitempty,max=20"`
	Notes            null.String `json:"notes"`
	IsActive         *bool       `json:"isActive"`
}

type UpdateFreightHandlerDTO struct {
	Name     *string     `json:"name" validate:"omitempty,min=1,max=255"`
	Company  null.String `json:"company"`
	Address  null.String `json:"address"`
	Country  *string     `json:"country" validate:"omitempty,max=100"`
	Phone    null.String `json:"phone" validate:"omitempty,max=50"`
	GSTIN    null.String `json:"gstin" validate:"omitempty,max=20"`
	Notes    null.String `json:"notes"`
	IsActive *bool       `json:"isActive"`
}

type BulkFreightHandlersDTO struct {
	FreightHandlers []FreightHandlerDTO `json:"freightHandlers" validate:"required,min=1,dive"`
}
