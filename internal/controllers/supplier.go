package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/services"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/utils"
)

type SupplierController struct {
	supplierService services.SupplierServiceInterface
	logger          *zap.Logger
}

func NewSupplierController(supplierService services.SupplierServiceInterface, logger *zap.Logger) *SupplierController {
	return &SupplierController{supplierService: supplierService, logger: logger}
}

func (c *SupplierController) GetSuppliers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.supplierService.GetSuppliers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK, total)
}

func (c *SupplierController) SearchSuppliers(ctx echo.Context) error {
	res, err := c.supplierService.SearchSuppliers(ctx.Request().Context(), ctx.QueryParam("q"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *SupplierController) GetStats(ctx echo.Context) error {
	res, err := c.supplierService.Stats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *SupplierController) FindSupplier(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "supplierId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.supplierService.FindSupplier(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *SupplierController) CreateSupplier(ctx echo.Context) error {
	var payload dto.CreateSupplierDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.supplierService.CreateSupplier(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Supplier created", http.StatusCreated)
}

func (c *SupplierController) UpdateSupplier(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "supplierId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateSupplierDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.supplierService.UpdateSupplier(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Supplier updated", http.StatusOK)
}

// DeactivateSupplier is the soft delete.
func (c *SupplierController) DeactivateSupplier(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "supplierId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.supplierService.DeactivateSupplier(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Supplier deactivated", http.StatusOK)
}

func (c *SupplierController) DeleteSupplier(ctx echo.Context) error {
	id, err := publicIDParam(ctx, "supplierId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.supplierService.DeleteSupplier(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Supplier deleted", http.StatusOK)
}

// publicIDParam reads a public identifier such as SUP001 from the path.
func publicIDParam(ctx echo.Context, name string) (string, error) {
	id := strings.TrimSpace(ctx.Param(name))
	if id == "" {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "Invalid ID", nil)
	}
	return id, nil
}

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Invalid ID", err)
	}
	return id, nil
}
