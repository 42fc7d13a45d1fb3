package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/services"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/utils"
)

// OrderLifecycleController exposes the history mutators. Each handler
// answers with the full updated order.
type OrderLifecycleController struct {
	lifecycleService services.OrderLifecycleServiceInterface
	logger           *zap.Logger
}

func NewOrderLifecycleController(lifecycleService services.OrderLifecycleServiceInterface, logger *zap.Logger) *OrderLifecycleController {
	return &OrderLifecycleController{lifecycleService: lifecycleService, logger: logger}
}

func (c *OrderLifecycleController) UpdateStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	claims, err := utils.GetClaimsFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateOrderStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.lifecycleService.UpdateStatus(reqCtx, ctx.Param("orderId"),
		constants.OrderStatus(payload.NewStatus), payload.Note, claims.Actor())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Status updated", http.StatusOK)
}

func (c *OrderLifecycleController) AddComment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	claims, err := utils.GetClaimsFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AddCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.lifecycleService.AddComment(reqCtx, ctx.Param("orderId"), payload.Message, payload.IsInternal, claims.Actor())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Comment added", http.StatusCreated)
}

func (c *OrderLifecycleController) AddTimelineEvent(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	claims, err := utils.GetClaimsFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AddTimelineEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var status *constants.OrderStatus
	if payload.Status != nil {
		s := constants.OrderStatus(*payload.Status)
		status = &s
	}

	order, err := c.lifecycleService.AddTimelineEvent(reqCtx, ctx.Param("orderId"), payload.Event, payload.Details, status, claims.Actor())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Timeline event added", http.StatusCreated)
}

func (c *OrderLifecycleController) AttachDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	claims, err := utils.GetClaimsFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AttachDocumentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.lifecycleService.AttachDocument(reqCtx, ctx.Param("orderId"),
		constants.DocumentType(payload.DocumentType), payload.DocumentData, payload.Filename, payload.MimeType, claims.Actor())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Document uploaded", http.StatusCreated)
}
