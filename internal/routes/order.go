package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/middleware"
)

func runOrderRouter(
	secureGroup *echo.Group,
	orderCtrl *controllers.OrderController,
	lifecycleCtrl *controllers.OrderLifecycleController,
	authMW *middleware.AuthMiddleware,
) {
	managers := authMW.Authorize(constants.ManagerRoles...)

	orders := secureGroup.Group("/orders")
	{
		orders.GET("", orderCtrl.GetOrders)
		orders.GET("/statuses", orderCtrl.GetStatuses)
		orders.GET("/my-orders", orderCtrl.GetMyOrders)
		orders.GET("/team-orders", orderCtrl.GetTeamOrders, managers)
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/:orderId", orderCtrl.FindOrder)
		orders.GET("/:orderId/sections", orderCtrl.GetSections)
		orders.PUT("/:orderId", orderCtrl.UpdateOrder)
		orders.DELETE("/:orderId", orderCtrl.DeleteOrder, managers)

		orders.PATCH("/:orderId/status", lifecycleCtrl.UpdateStatus)
		orders.POST("/:orderId/comments", lifecycleCtrl.AddComment)
		orders.POST("/:orderId/timeline", lifecycleCtrl.AddTimelineEvent)
		orders.POST("/:orderId/documents", lifecycleCtrl.AttachDocument)
	}
}
