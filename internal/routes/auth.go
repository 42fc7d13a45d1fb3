package routes

import (
	"github.com/labstack/echo/v4"

	"pharma-order-system/internal/controllers"
	"pharma-order-system/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
	}
}
