package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
)

func runMaterialRouter(secureGroup *echo.Group, materialCtrl *controllers.MaterialController) {
	materials := secureGroup.Group("/materials")
	{
		materials.GET("", materialCtrl.GetMaterials)
		materials.GET("/categories", materialCtrl.GetCategories)
		materials.GET("/item/:itemId", materialCtrl.FindByItemID)
		materials.GET("/:id", materialCtrl.FindMaterial)
		materials.POST("", materialCtrl.CreateMaterial)
		materials.PUT("/:id", materialCtrl.UpdateMaterial)
		materials.DELETE("/:id", materialCtrl.DeleteMaterial)
	}
}
