package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/services"
	"pharma-order-system/pkg/utils"
)

const ordersSheet = "Orders"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetOrderStats(ctx echo.Context) error {
	filter := dto.OrderStatsFilter{
		Span:     ctx.QueryParam("span"),
		Entity:   ctx.QueryParam("entity"),
		Currency: ctx.QueryParam("currency"),
	}
	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			filter.Since = &t
		}
	}

	stats, err := c.reportService.OrderStats(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stats, "Successfully", http.StatusOK)
}

func (c *ReportController) ExportOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	c.logger.Debug("orders export requested", zap.Any("filter", filter.Filter))

	orders, err := c.reportService.ExportOrders(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, orders)
}

var orderExportHeaders = []string{
	"Order ID", "Created", "Status", "Entity", "Customer", "Supplier", "Material",
	"Quantity", "Unit", "Price to customer", "Currency", "Price from supplier",
	"Supplier currency", "PO number", "Assigned to", "Created by", "ETA",
}

func orderToRow(o *entities.Order) []interface{} {
	const dateFmt = "2006-01-02"
	var supplier, assigned string
	if o.Supplier != nil {
		supplier = o.Supplier.Name
	}
	if o.AssignedTo != nil {
		assigned = o.AssignedTo.Name
	}

	return []interface{}{
		o.OrderID, o.CreatedAt.Format(dateFmt), string(o.Status), o.Entity, o.Customer.Name, supplier,
		o.MaterialName, o.Quantity.Value, o.Quantity.Unit, o.PriceToCustomer.Amount, o.PriceToCustomer.Currency,
		o.PriceFromSupplier.Amount, o.PriceFromSupplier.Currency, o.PONumber, assigned, o.CreatedBy.Name, o.ETA,
	}
}

// BuildOrdersWorkbook renders orders as a single-sheet workbook.
func BuildOrdersWorkbook(orders []entities.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderExportHeaders); err != nil {
		return nil, err
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(ordersSheet, "A1", "Q1", style)

	for i := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderToRow(&orders[i])
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(ordersSheet, "A", "B", 20)
	_ = f.SetColWidth(ordersSheet, "C", "C", 28)
	_ = f.SetColWidth(ordersSheet, "E", "G", 30)
	return f, nil
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, orders []entities.Order) error {
	f, err := BuildOrdersWorkbook(orders)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
