package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/contextkeys"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/service"
	"pharma-order-system/pkg/utils"
)

// UserFinder loads the account behind a token.
type UserFinder interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	users      UserFinder
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, users UserFinder, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		users:      users,
		logger:     logger,
	}
}

// Auth validates the bearer token, loads the user and rejects deactivated
// accounts. The resulting claims are stored in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Debug("AuthMiddleware: token rejected", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := c.Request().Context()
		user, err := m.users.FindUserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			return utils.ErrorResponse(c, err, m.logger)
		}
		if !user.IsActive {
			return utils.ErrorResponse(c, apperrors.ErrUserInactive, m.logger)
		}

		userClaims := &dto.UserClaims{
			ID:     user.ID,
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Team:   user.Team.String,
		}
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, user.ID)
		ctx = context.WithValue(ctx, contextkeys.UserClaimsKey, userClaims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Authorize allows the request only for the listed roles.
func (m *AuthMiddleware) Authorize(roles ...constants.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := utils.GetClaimsFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			if !claims.HasRole(roles...) {
				m.logger.Warn("AuthMiddleware: role not allowed",
					zap.String("userId", claims.UserID),
					zap.String("role", string(claims.Role)),
					zap.String("path", c.Path()),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
