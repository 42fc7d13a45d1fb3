package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController) {
	reports := secureGroup.Group("/reports")
	{
		reports.GET("/orders/stats", reportCtrl.GetOrderStats)
		reports.GET("/orders/export", reportCtrl.ExportOrders)
	}
}
