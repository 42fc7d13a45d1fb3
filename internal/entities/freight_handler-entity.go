package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type FreightHandler struct {
	ID               uint64      `json:"id"`
	FreightHandlerID string      `json:"freightHandlerId"`
	Name             string      `json:"name"`
	Company          null.String `json:"company"`
	Address          null.String `json:"address"`
	Country          string      `json:"country"`
	Phone            null.String `json:"phone"`
	GSTIN            null.String `json:"gstin"`
	Notes            null.String `json:"notes"`
	IsActive         bool        `json:"isActive"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
