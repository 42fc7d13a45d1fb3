package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pharma-order-system/internal/controllers"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/internal/services"
	"pharma-order-system/pkg/config"
	"pharma-order-system/pkg/middleware"
	"pharma-order-system/pkg/service"
)

type Loggers struct {
	Main       *zap.Logger
	Auth       *zap.Logger
	Order      *zap.Logger
	MasterData *zap.Logger
}

// Deps are the process-wide collaborators built in main.
type Deps struct {
	DB        *pgxpool.Pool
	Redis     *redis.Client
	JWT       service.JWTService
	Publisher services.EventPublisher
	Rates     services.CurrencyConverter
	Config    *config.Config
}

func InitRouter(e *echo.Echo, deps Deps, loggers *Loggers) {
	loggers.Main.Info("InitRouter: building routes")

	// --- 0. COMMON ---
	api := e.Group("/api")

	// --- 1. REPOSITORIES ---
	userRepo := repositories.NewUserRepository(deps.DB, loggers.Auth)
	cacheRepo := repositories.NewRedisCacheRepository(deps.Redis)
	orderRepo := repositories.NewOrderRepository(deps.DB, loggers.Order)
	supplierRepo := repositories.NewSupplierRepository(deps.DB, loggers.MasterData)
	materialRepo := repositories.NewMaterialRepository(deps.DB, loggers.MasterData)
	productRepo := repositories.NewProductRepository(deps.DB, loggers.MasterData)
	handlerRepo := repositories.NewFreightHandlerRepository(deps.DB, loggers.MasterData)

	authMW := middleware.NewAuthMiddleware(deps.JWT, userRepo, loggers.Auth)

	// --- 2. SERVICES ---
	authService := services.NewAuthService(userRepo, cacheRepo, deps.JWT, loggers.Auth, &deps.Config.Auth)
	userService := services.NewUserService(userRepo, loggers.Auth)
	orderService := services.NewOrderService(orderRepo, deps.Publisher, loggers.Order)
	lifecycleService := services.NewOrderLifecycleService(orderRepo, deps.Publisher, loggers.Order)
	supplierService := services.NewSupplierService(supplierRepo, loggers.MasterData)
	materialService := services.NewMaterialService(materialRepo, supplierRepo, loggers.MasterData)
	productService := services.NewProductService(productRepo, loggers.MasterData)
	handlerService := services.NewFreightHandlerService(handlerRepo, loggers.MasterData)
	reportService := services.NewReportService(orderRepo, deps.Rates, loggers.Order)

	// --- 3. CONTROLLERS ---
	authCtrl := controllers.NewAuthController(authService, loggers.Auth)
	userCtrl := controllers.NewUserController(userService, loggers.Auth)
	orderCtrl := controllers.NewOrderController(orderService, loggers.Order)
	lifecycleCtrl := controllers.NewOrderLifecycleController(lifecycleService, loggers.Order)
	supplierCtrl := controllers.NewSupplierController(supplierService, loggers.MasterData)
	materialCtrl := controllers.NewMaterialController(materialService, loggers.MasterData)
	productCtrl := controllers.NewProductController(productService, loggers.MasterData)
	handlerCtrl := controllers.NewFreightHandlerController(handlerService, loggers.MasterData)
	reportCtrl := controllers.NewReportController(reportService, loggers.Order)
	healthCtrl := controllers.NewHealthController(deps.DB, cacheRepo, loggers.Main)

	// --- 4. ROUTERS ---
	e.GET("/health", healthCtrl.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	runAuthRouter(api, authCtrl, authMW)

	secureGroup := api.Group("", authMW.Auth)
	runUserRouter(secureGroup, userCtrl, authMW)
	runOrderRouter(secureGroup, orderCtrl, lifecycleCtrl, authMW)
	runSupplierRouter(secureGroup, supplierCtrl, authMW)
	runMaterialRouter(secureGroup, materialCtrl)
	runProductRouter(secureGroup, productCtrl)
	runFreightHandlerRouter(secureGroup, handlerCtrl)
	runReportRouter(secureGroup, reportCtrl)

	loggers.Main.Info("InitRouter: routes ready")
}
