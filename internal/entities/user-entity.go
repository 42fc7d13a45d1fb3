package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"pharma-order-system/pkg/constants"
)

type User struct {
	ID        uint64             `json:"id"`
	UserID    string             `json:"userId"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Password  string             `json:"-"`
	Role      constants.UserRole `json:"role"`
	Team      null.String        `json:"team"`
	IsActive  bool               `json:"isActive"`
	LastLogin null.Time          `json:"lastLogin"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Snapshot copies the identity fields embedded into order history.
func (u *User) Snapshot() Actor {
	return Actor{UserID: u.UserID, Name: u.Name, Role: u.Role}
}
