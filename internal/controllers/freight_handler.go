package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/services"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/utils"
)

type FreightHandlerController struct {
	handlerService services.FreightHandlerServiceInterface
	logger         *zap.Logger
}

func NewFreightHandlerController(handlerService services.FreightHandlerServiceInterface, logger *zap.Logger) *FreightHandlerController {
	return &FreightHandlerController{handlerService: handlerService, logger: logger}
}

func (c *FreightHandlerController) GetFreightHandlers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.handlerService.GetFreightHandlers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK, total)
}

func (c *FreightHandlerController) FindFreightHandler(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "freightHandlerId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.handlerService.FindFreightHandler(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *FreightHandlerController) CreateFreightHandler(ctx echo.Context) error {
	var payload dto.FreightHandlerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.handlerService.CreateFreightHandler(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Freight handler created", http.StatusCreated)
}

func (c *FreightHandlerController) CreateFreightHandlers(ctx echo.Context) error {
	var payload dto.BulkFreightHandlersDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.handlerService.CreateFreightHandlers(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Freight handlers imported", http.StatusCreated)
}

func (c *FreightHandlerController) UpdateFreightHandler(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "freightHandlerId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateFreightHandlerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.handlerService.UpdateFreightHandler(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Freight handler updated", http.StatusOK)
}

func (c *FreightHandlerController) DeleteFreightHandler(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "freightHandlerId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.handlerService.DeleteFreightHandler(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Freight handler deleted", http.StatusOK)
}
