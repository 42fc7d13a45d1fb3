package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories/mocks"
	apperrors "pharma-order-system/pkg/errors"
)

func newMaterialFixture(t *testing.T) (MaterialServiceInterface, *mocks.MockMaterialRepositoryInterface, *mocks.MockSupplierRepositoryInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	materials := mocks.NewMockMaterialRepositoryInterface(ctrl)
	suppliers := mocks.NewMockSupplierRepositoryInterface(ctrl)
	return NewMaterialService(materials, suppliers, zap.NewNop()), materials, suppliers
}

func TestCreateMaterial_LinksVendorToSupplier(t *testing.T) {
	svc, materials, suppliers := newMaterialFixture(t)

	materials.EXPECT().FindByItemID(gomock.Any(), "PARA-500").Return(nil, apperrors.ErrNotFound)
	suppliers.EXPECT().FindByName(gomock.Any(), "Hetero Labs").Return(&entities.Supplier{ID: 4, Name: "Hetero Labs"}, nil)
	materials.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateMaterial(context.Background(), dto.CreateMaterialDTO{
		ItemID:      "PARA-500",
		ItemName:    "Paracetamol API",
		MaterialDTO: dto.MaterialDTO{Vendor: null.StringFrom(" Hetero Labs ")},
	})
	require.NoError(t, err)
	assert.Equal(t, null.Uint64From(4), got.SupplierID)
	assert.True(t, got.Taxable)
}

func TestCreateMaterial_UnknownVendorLeftUnlinked(t *testing.T) {
	svc, materials, suppliers := newMaterialFixture(t)

	materials.EXPECT().FindByItemID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotFound)
	suppliers.EXPECT().FindByName(gomock.Any(), "Nobody Pharma").Return(nil, apperrors.ErrNotFound)
	materials.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateMaterial(context.Background(), dto.CreateMaterialDTO{
		ItemID:      "IBU-200",
		ItemName:    "Ibuprofen",
		MaterialDTO: dto.MaterialDTO{Vendor: null.StringFrom("Nobody Pharma")},
	})
	require.NoError(t, err)
	assert.False(t, got.SupplierID.Valid)
}

func TestCreateMaterial_ExplicitSupplierSkipsLookup(t *testing.T) {
	svc, materials, _ := newMaterialFixture(t)

	materials.EXPECT().FindByItemID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotFound)
	materials.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateMaterial(context.Background(), dto.CreateMaterialDTO{
		ItemID:   "AMOX-1",
		ItemName: "Amoxicillin",
		MaterialDTO: dto.MaterialDTO{
			Vendor:     null.StringFrom("Hetero Labs"),
			SupplierID: null.Uint64From(9),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got.SupplierID.Uint64)
}

func TestCreateMaterial_DuplicateItemID(t *testing.T) {
	svc, materials, _ := newMaterialFixture(t)

	materials.EXPECT().FindByItemID(gomock.Any(), "PARA-500").Return(&entities.Material{ID: 1, ItemID: "PARA-500"}, nil)

	_, err := svc.CreateMaterial(context.Background(), dto.CreateMaterialDTO{ItemID: "PARA-500", ItemName: "Paracetamol"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateMaterial_VendorChangeRelinks(t *testing.T) {
	svc, materials, suppliers := newMaterialFixture(t)
	stored := &entities.Material{
		ID:         3,
		ItemID:     "PARA-500",
		Vendor:     null.StringFrom("Hetero Labs"),
		SupplierID: null.Uint64From(4),
	}

	materials.EXPECT().FindMaterial(gomock.Any(), uint64(3)).Return(stored, nil)
	suppliers.EXPECT().FindByName(gomock.Any(), "Shree Ganesh Chemicals").Return(&entities.Supplier{ID: 1}, nil)
	materials.EXPECT().UpdateMaterial(gomock.Any(), stored).Return(nil)

	got, err := svc.UpdateMaterial(context.Background(), 3, dto.UpdateMaterialDTO{
		MaterialDTO: dto.MaterialDTO{Vendor: null.StringFrom("Shree Ganesh Chemicals")},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.SupplierID.Uint64)
	assert.Equal(t, "Shree Ganesh Chemicals", got.Vendor.String)
}
