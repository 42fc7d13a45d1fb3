package utils

import (
	"context"

	"pharma-order-system/internal/dto"
	"pharma-order-system/pkg/contextkeys"
	apperrors "pharma-order-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserNotInContext
	}
	return userID, nil
}

func GetClaimsFromContext(ctx context.Context) (*dto.UserClaims, error) {
	claims, ok := ctx.Value(contextkeys.UserClaimsKey).(*dto.UserClaims)
	if !ok || claims == nil {
		return nil, apperrors.ErrUserNotInContext
	}
	return claims, nil
}

// WithClaims is used by tests and background jobs that act as a user.
func WithClaims(ctx context.Context, claims *dto.UserClaims) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.ID)
	return context.WithValue(ctx, contextkeys.UserClaimsKey, claims)
}
