package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/types"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
}

type UserService struct {
	repo   repositories.UserRepositoryInterface
	logger *zap.Logger
}

func NewUserService(repo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.repo.GetUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, ToUserDTO(&users[i]))
	}
	return out, total, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, p dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		user.Name = strings.TrimSpace(*p.Name)
	}
	if p.Role != nil {
		user.Role = constants.UserRole(*p.Role)
	}
	if p.Team.Valid {
		user.Team = p.Team
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user updated", zap.String("userId", user.UserID), zap.String("role", string(user.Role)), zap.Bool("isActive", user.IsActive))

	res := ToUserDTO(user)
	return &res, nil
}
