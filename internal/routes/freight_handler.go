package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
)

func runFreightHandlerRouter(secureGroup *echo.Group, handlerCtrl *controllers.FreightHandlerController) {
	handlers := secureGroup.Group("/freight-handlers")
	{
		handlers.GET("", handlerCtrl.GetFreightHandlers)
		handlers.GET("/:freightHandlerId", handlerCtrl.FindFreightHandler)
		handlers.POST("", handlerCtrl.CreateFreightHandler)
		handlers.POST("/bulk", handlerCtrl.CreateFreightHandlers)
		handlers.PUT("/:freightHandlerId", handlerCtrl.UpdateFreightHandler)
		handlers.DELETE("/:freightHandlerId", handlerCtrl.DeleteFreightHandler)
	}
}
