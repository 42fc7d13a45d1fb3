package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories/mocks"
	apperrors "pharma-order-system/pkg/errors"
)

func TestSearchSuppliers_LimitDependsOnQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSupplierRepositoryInterface(ctrl)
	svc := NewSupplierService(repo, zap.NewNop())

	repo.EXPECT().SearchActive(gomock.Any(), "", uint64(50)).Return([]entities.Supplier{}, nil)
	repo.EXPECT().SearchActive(gomock.Any(), "hetero", uint64(100)).Return([]entities.Supplier{{Name: "Hetero Labs"}}, nil)

	_, err := svc.SearchSuppliers(context.Background(), "   ")
	require.NoError(t, err)

	got, err := svc.SearchSuppliers(context.Background(), " hetero ")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCreateSupplier_GeneratesIDAndDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSupplierRepositoryInterface(ctrl)
	svc := NewSupplierService(repo, zap.NewNop())

	repo.EXPECT().LastPublicID(gomock.Any()).Return("SUP047", nil)
	repo.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateSupplier(context.Background(), dto.CreateSupplierDTO{Name: "  Hetero Labs "})
	require.NoError(t, err)
	assert.Equal(t, "SUP048", got.SupplierID)
	assert.Equal(t, "Hetero Labs", got.Name)
	assert.Equal(t, "India", got.Country)
	assert.Equal(t, []string{}, got.Specialties)
	assert.True(t, got.IsActive)
}

func TestCreateSupplier_KeepsGivenIDAndSurfacesConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSupplierRepositoryInterface(ctrl)
	svc := NewSupplierService(repo, zap.NewNop())
	inactive := false

	repo.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *entities.Supplier) error {
		assert.Equal(t, "SUP010", s.SupplierID)
		assert.False(t, s.IsActive)
		return apperrors.ErrConflict
	})

	_, err := svc.CreateSupplier(context.Background(), dto.CreateSupplierDTO{SupplierID: "SUP010", Name: "Dup", IsActive: &inactive})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSupplierLookupsUsePublicID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSupplierRepositoryInterface(ctrl)
	svc := NewSupplierService(repo, zap.NewNop())
	stored := &entities.Supplier{ID: 42, SupplierID: "SUP001", Name: "Hetero Labs"}

	repo.EXPECT().FindBySupplierID(gomock.Any(), "SUP001").Return(stored, nil).Times(3)
	repo.EXPECT().DeactivateSupplier(gomock.Any(), uint64(42)).Return(nil)
	repo.EXPECT().DeleteSupplier(gomock.Any(), uint64(42)).Return(nil)

	got, err := svc.FindSupplier(context.Background(), " SUP001 ")
	require.NoError(t, err)
	assert.Equal(t, "Hetero Labs", got.Name)

	require.NoError(t, svc.DeactivateSupplier(context.Background(), "SUP001"))
	require.NoError(t, svc.DeleteSupplier(context.Background(), "SUP001"))
}

func TestUpdateSupplier_UnknownPublicIDIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSupplierRepositoryInterface(ctrl)
	svc := NewSupplierService(repo, zap.NewNop())

	repo.EXPECT().FindBySupplierID(gomock.Any(), "SUP999").Return(nil, apperrors.ErrNotFound)

	name := "Renamed"
	_, err := svc.UpdateSupplier(context.Background(), "SUP999", dto.UpdateSupplierDTO{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
