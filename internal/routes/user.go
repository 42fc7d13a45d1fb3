package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
	"pharma-order-system/pkg/constants"
	"pharma-order-system/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.Authorize(constants.RoleAdmin)

	secureGroup.GET("/users", userCtrl.GetUsers, adminOnly)
	secureGroup.PUT("/users/:id", userCtrl.UpdateUser, adminOnly)
}
