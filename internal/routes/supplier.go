package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/middleware"
)

func runSupplierRouter(secureGroup *echo.Group, supplierCtrl *controllers.SupplierController, authMW *middleware.AuthMiddleware) {
	managers := authMW.Authorize(constants.ManagerRoles...)
	adminOnly := authMW.Authorize(constants.RoleAdmin)

	suppliers := secureGroup.Group("/suppliers")
	{
		suppliers.GET("", supplierCtrl.GetSuppliers)
		suppliers.GET("/search", supplierCtrl.SearchSuppliers)
		suppliers.GET("/stats", supplierCtrl.GetStats, managers)
		suppliers.GET("/:supplierId", supplierCtrl.FindSupplier)
		suppliers.POST("", supplierCtrl.CreateSupplier, managers)
		suppliers.PUT("/:supplierId", supplierCtrl.UpdateSupplier, managers)
		suppliers.DELETE("/:supplierId", supplierCtrl.DeactivateSupplier, managers)
		suppliers.DELETE("/:supplierId/hard", supplierCtrl.DeleteSupplier, adminOnly)
	}
}
