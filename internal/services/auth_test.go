package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories/mocks"
	"pharma-order-system/pkg/config"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/service"
	"pharma-order-system/pkg/utils"
)

type authFixture struct {
	svc   AuthServiceInterface
	users *mocks.MockUserRepositoryInterface
	cache *mocks.MockCacheRepositoryInterface
	jwt   service.JWTService
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	cache := mocks.NewMockCacheRepositoryInterface(ctrl)
	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}

	return authFixture{
		svc:   NewAuthService(users, cache, jwtSvc, zap.NewNop(), cfg),
		users: users,
		cache: cache,
		jwt:   jwtSvc,
	}
}

func activeUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entities.User{
		ID:       7,
		UserID:   "user-7",
		Name:     "Anil Rao",
		Email:    "anil@pharma.local",
		Password: hash,
		Role:     constants.RoleManager,
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := activeUser(t, "secret123")

	f.cache.EXPECT().Get(gomock.Any(), "lockout:anil@pharma.local").Return("", apperrors.ErrNotFound)
	f.users.EXPECT().FindByEmail(gomock.Any(), "anil@pharma.local").Return(user, nil)
	f.cache.EXPECT().Del(gomock.Any(), "login_attempts:anil@pharma.local", "lockout:anil@pharma.local").Return(nil)
	f.users.EXPECT().UpdateLastLogin(gomock.Any(), uint64(7)).Return(nil)

	res, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "  Anil@Pharma.local ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "user-7", res.User.UserID)
	assert.Equal(t, constants.RoleManager, res.User.Role)

	claims, err := f.jwt.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
}

func TestLogin_WrongPasswordCountsAttempt(t *testing.T) {
	f := newAuthFixture(t)
	user := activeUser(t, "secret123")

	f.cache.EXPECT().Get(gomock.Any(), "lockout:anil@pharma.local").Return("", apperrors.ErrNotFound)
	f.users.EXPECT().FindByEmail(gomock.Any(), "anil@pharma.local").Return(user, nil)
	f.cache.EXPECT().Incr(gomock.Any(), "login_attempts:anil@pharma.local").Return(int64(1), nil)
	f.cache.EXPECT().Expire(gomock.Any(), "login_attempts:anil@pharma.local", 15*time.Minute).Return(true, nil)

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "anil@pharma.local", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_LocksAfterMaxAttempts(t *testing.T) {
	f := newAuthFixture(t)
	user := activeUser(t, "secret123")

	f.cache.EXPECT().Get(gomock.Any(), "lockout:anil@pharma.local").Return("", apperrors.ErrNotFound)
	f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
	f.cache.EXPECT().Incr(gomock.Any(), "login_attempts:anil@pharma.local").Return(int64(3), nil)
	f.cache.EXPECT().Set(gomock.Any(), "lockout:anil@pharma.local", "locked", 15*time.Minute).Return(nil)
	f.cache.EXPECT().Del(gomock.Any(), "login_attempts:anil@pharma.local").Return(nil)

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "anil@pharma.local", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_LockedEmailRejectedWithoutLookup(t *testing.T) {
	f := newAuthFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "lockout:anil@pharma.local").Return("locked", nil)

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "anil@pharma.local", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyAttempts)
}

func TestLogin_UnknownEmailIsInvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", apperrors.ErrNotFound)
	f.users.EXPECT().FindByEmail(gomock.Any(), "ghost@pharma.local").Return(nil, apperrors.ErrNotFound)
	f.cache.EXPECT().Incr(gomock.Any(), "login_attempts:ghost@pharma.local").Return(int64(2), nil)

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "ghost@pharma.local", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	user := activeUser(t, "secret123")
	user.IsActive = false

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", apperrors.ErrNotFound)
	f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "anil@pharma.local", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

func TestRegister_DefaultsRoleAndUserID(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindByEmail(gomock.Any(), "new@pharma.local").Return(nil, apperrors.ErrNotFound)
	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) error {
		u.ID = 11
		return nil
	})

	res, err := f.svc.Register(context.Background(), dto.RegisterDTO{
		Name:     "New Joiner",
		Email:    "New@Pharma.local",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleEmployee, res.User.Role)
	assert.Equal(t, "new@pharma.local", res.User.Email)
	assert.Contains(t, res.User.UserID, "user-")
	assert.True(t, res.User.IsActive)
	assert.NotEmpty(t, res.Token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindByEmail(gomock.Any(), "anil@pharma.local").Return(activeUser(t, "x12345"), nil)

	_, err := f.svc.Register(context.Background(), dto.RegisterDTO{Name: "Anil", Email: "anil@pharma.local", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
