package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/config"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/service"
	"pharma-order-system/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrConflict, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	role := constants.RoleEmployee
	if payload.Role != "" {
		role = constants.UserRole(payload.Role)
	}
	userID := strings.TrimSpace(payload.UserID)
	if userID == "" {
		userID = "user-" + uuid.NewString()
	}

	user := &entities.User{
		UserID:   userID,
		Name:     strings.TrimSpace(payload.Name),
		Email:    email,
		Password: hash,
		Role:     role,
		Team:     payload.Team,
		IsActive: true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("userId", user.UserID), zap.String("role", string(user.Role)))

	return s.issue(user)
}

// Login checks the password and counts failures per email in the cache.
// Reaching MaxLoginAttempts locks the email for LockoutDuration.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	logger := s.logger.With(zap.String("email", email))

	if err := s.checkLockout(ctx, email); err != nil {
		logger.Warn("login rejected, account locked")
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.handleFailedLoginAttempt(ctx, email)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, email)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	s.resetLoginAttempts(ctx, email)
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn("failed to stamp last login", zap.Error(err))
	}

	return s.issue(user)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetUserByID: user lookup failed", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(user *entities.User) (*dto.AuthResponseDTO, error) {
	token, err := s.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.AuthResponseDTO{Token: token, User: ToUserDTO(user)}, nil
}

func (s *AuthService) checkLockout(ctx context.Context, email string) error {
	_, err := s.cacheRepo.Get(ctx, lockoutKey(email))
	switch {
	case err == nil:
		return apperrors.ErrTooManyAttempts
	case !errors.Is(err, apperrors.ErrNotFound):
		s.logger.Warn("lockout check skipped, cache unavailable", zap.String("email", email), zap.Error(err))
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, email string) {
	attemptsKey := loginAttemptsKey(email)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("failed to count login attempt", zap.String("email", email), zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		_ = s.cacheRepo.Set(ctx, lockoutKey(email), "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
		s.logger.Warn("email locked after repeated login failures", zap.String("email", email), zap.Int64("attempts", attempts))
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, email string) {
	_ = s.cacheRepo.Del(ctx, loginAttemptsKey(email), lockoutKey(email))
}

func loginAttemptsKey(email string) string {
	return "login_attempts:" + email
}

func lockoutKey(email string) string {
	return "lockout:" + email
}

func ToUserDTO(u *entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Team:      u.Team,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

