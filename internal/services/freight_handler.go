package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/types"
)

type FreightHandlerServiceInterface interface {
	GetFreightHandlers(ctx context.Context, filter types.Filter) ([]entities.FreightHandler, uint64, error)
	FindFreightHandler(ctx context.Context, freightHandlerID string) (*entities.FreightHandler, error)
	CreateFreightHandler(ctx context.Context, payload dto.FreightHandlerDTO) (*entities.FreightHandler, error)
	CreateFreightHandlers(ctx context.Context, payload dto.BulkFreightHandlersDTO) (*dto.BulkCreateResultDTO, error)
	UpdateFreightHandler(ctx context.Context, freightHandlerID string, payload dto.UpdateFreightHandlerDTO) (*entities.FreightHandler, error)
	DeleteFreightHandler(ctx context.Context, freightHandlerID string) error
}

type FreightHandlerService struct {
	repo   repositories.FreightHandlerRepositoryInterface
	logger *zap.Logger
}

func NewFreightHandlerService(repo repositories.FreightHandlerRepositoryInterface, logger *zap.Logger) FreightHandlerServiceInterface {
	return &FreightHandlerService{repo: repo, logger: logger}
}

func (s *FreightHandlerService) GetFreightHandlers(ctx context.Context, filter types.Filter) ([]entities.FreightHandler, uint64, error) {
	return s.repo.GetFreightHandlers(ctx, filter)
}

func (s *FreightHandlerService) FindFreightHandler(ctx context.Context, freightHandlerID string) (*entities.FreightHandler, error) {
	return s.repo.FindByFreightHandlerID(ctx, strings.TrimSpace(freightHandlerID))
}

func (s *FreightHandlerService) CreateFreightHandler(ctx context.Context, p dto.FreightHandlerDTO) (*entities.FreightHandler, error) {
	handler := newFreightHandler(p)
	if handler.FreightHandlerID == "" {
		id, err := generatePublicID(ctx, s.repo, constants.FreightHandlerIDPrefix, constants.FreightHandlerIDWidth)
		if err != nil {
			return nil, err
		}
		handler.FreightHandlerID = id
	}
	if err := s.repo.CreateFreightHandler(ctx, handler); err != nil {
		return nil, err
	}
	return handler, nil
}

func (s *FreightHandlerService) CreateFreightHandlers(ctx context.Context, p dto.BulkFreightHandlersDTO) (*dto.BulkCreateResultDTO, error) {
	last, err := s.repo.LastPublicID(ctx)
	if err != nil {
		return nil, err
	}

	handlers := make([]entities.FreightHandler, 0, len(p.FreightHandlers))
	for _, item := range p.FreightHandlers {
		h := newFreightHandler(item)
		if h.FreightHandlerID == "" {
			h.FreightHandlerID = NextPublicID(constants.FreightHandlerIDPrefix, constants.FreightHandlerIDWidth, last)
			last = h.FreightHandlerID
		}
		handlers = append(handlers, *h)
	}

	created, err := s.repo.CreateFreightHandlers(ctx, handlers)
	if err != nil {
		return nil, err
	}
	return &dto.BulkCreateResultDTO{Requested: len(handlers), Created: created}, nil
}

func (s *FreightHandlerService) UpdateFreightHandler(ctx context.Context, freightHandlerID string, p dto.UpdateFreightHandlerDTO) (*entities.FreightHandler, error) {
	h, err := s.FindFreightHandler(ctx, freightHandlerID)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		h.Name = strings.TrimSpace(*p.Name)
	}
	if p.Country != nil {
		h.Country = orDefault(*p.Country, constants.DefaultSupplierCountry)
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
	mergeNullStrings([]nullStringPatch{
		{&h.Company, p.Company},
		{&h.Address, p.Address},
		{&h.Phone, p.Phone},
		{&h.GSTIN, p.GSTIN},
		{&h.Notes, p.Notes},
	})

	if err := s.repo.UpdateFreightHandler(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *FreightHandlerService) DeleteFreightHandler(ctx context.Context, freightHandlerID string) error {
	h, err := s.FindFreightHandler(ctx, freightHandlerID)
	if err != nil {
		return err
	}
	return s.repo.DeleteFreightHandler(ctx, h.ID)
}

func newFreightHandler(p dto.FreightHandlerDTO) *entities.FreightHandler {
	return &entities.FreightHandler{
		FreightHandlerID: strings.TrimSpace(p.FreightHandlerID),
		Name:             strings.TrimSpace(p.Name),
		Company:          p.Company,
		Address:          p.Address,
		Country:          orDefault(p.Country, constants.DefaultSupplierCountry),
		Phone:            p.Phone,
		GSTIN:            p.GSTIN,
		Notes:            p.Notes,
		IsActive:         p.IsActive == nil || *p.IsActive,
	}
}
