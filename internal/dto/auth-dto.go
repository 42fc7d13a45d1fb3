package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"pharma-order-system/pkg/constants"
)

type RegisterDTO struct {
	UserID   string      `json:"userId" validate:"omitempty,max=50"`
	Name     string      `json:"name" validate:"required,max=255"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6,max=72"`
	Role     string      `json:"role" validate:"omitempty,user_role"`
	Team     null.String `json:"team"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID        uint64             `json:"id"`
	UserID    string             `json:"userId"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      constants.UserRole `json:"role"`
	Team      null.String        `json:"team"`
	IsActive  bool               `json:"isActive"`
	LastLogin null.Time          `json:"lastLogin"`
	CreatedAt time.Time          `json:"createdAt"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UpdateUserDTO struct {
	Name     *string     `json:"name" validate:"omitempty,min=1,max=255"`
	Role     *string     `json:"role" validate:"omitempty,user_role"`
	Team     null.String `json:"team"`
	IsActive *bool       `json:"isActive"`
}
