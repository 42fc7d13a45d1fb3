package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
)

func runProductRouter(secureGroup *echo.Group, productCtrl *controllers.ProductController) {
	products := secureGroup.Group("/products")
	{
		products.GET("", productCtrl.GetProducts)
		products.GET("/:productId", productCtrl.FindProduct)
		products.POST("", productCtrl.CreateProduct)
		products.POST("/bulk", productCtrl.CreateProducts)
		products.PUT("/:productId", productCtrl.UpdateProduct)
		products.DELETE("/:productId", productCtrl.DeleteProduct)
	}
}
