package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pharma-order-system/internal/repositories/mocks"
	"pharma-order-system/pkg/constants"
)

func TestNextPublicID(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		width  int
		last   string
		want   string
	}{
		{"empty table", "SUP", 3, "", "SUP001"},
		{"increments", "SUP", 3, "SUP047", "SUP048"},
		{"grows past width", "SUP", 3, "SUP999", "SUP1000"},
		{"foreign prefix counts as zero", "SUP", 3, "VEND12", "SUP001"},
		{"non numeric suffix counts as zero", "FH", 3, "FH0A1", "FH001"},
		{"products are six wide", "PROD", 6, "PROD000123", "PROD000124"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPublicID(tt.prefix, tt.width, tt.last))
		})
	}
}

func TestGeneratePublicID_ReadsLastFromRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSupplierRepositoryInterface(ctrl)
	repo.EXPECT().LastPublicID(gomock.Any()).Return("SUP047", nil)

	id, err := generatePublicID(context.Background(), repo, constants.SupplierIDPrefix, constants.SupplierIDWidth)
	require.NoError(t, err)
	assert.Equal(t, "SUP048", id)
}
