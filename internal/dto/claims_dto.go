package dto

import (
	"pharma-order-system/internal/entities"
	"pharma-order-system/pkg/constants"
)

// UserClaims is what the auth middleware puts into the request context.
type UserClaims struct {
	ID     uint64
	UserID string
	Name   string
	Email  string
	Role   constants.UserRole
	Team   string
}

func (c *UserClaims) Actor() entities.Actor {
	return entities.Actor{UserID: c.UserID, Name: c.Name, Role: c.Role}
}

func (c *UserClaims) HasRole(roles ...constants.UserRole) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}
