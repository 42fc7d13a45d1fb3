package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"pharma-order-system/internal/listeners"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/internal/routes"
	"pharma-order-system/pkg/config"
	"pharma-order-system/pkg/customvalidator"
	"pharma-order-system/pkg/database/postgresql"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/eventbus"
	"pharma-order-system/pkg/exchangerate"
	"pharma-order-system/pkg/kafka"
	applogger "pharma-order-system/pkg/logger"
	"pharma-order-system/pkg/middleware"
	"pharma-order-system/pkg/service"
	"pharma-order-system/pkg/utils"
)

func main() {
	// 1. config and logger
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				_ = utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err), logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Use(echomw.BodyLimit("50M"))

	// 2. validator
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 3. storage
	dbConn, err := postgresql.ConnectDB(cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbConn.Close()

	if cfg.Postgres.MigrationsOnStart {
		if err := postgresql.Migrate(context.Background(), dbConn, logger); err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	defer redisClient.Close()

	// 4. events
	bus := eventbus.New(logger.Named("eventbus"))
	producer := kafka.NewProducer(cfg.Kafka.Brokers, logger.Named("kafka"))
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka producer close failed", zap.Error(err))
		}
	}()
	listeners.NewMetricsListener(logger).Register(bus)
	listeners.NewKafkaListener(producer, cfg.Kafka.OrderTopic, logger.Named("kafka")).Register(bus)

	// 5. routes
	rates := exchangerate.NewClient(cfg.Exchange.URL, cfg.Exchange.CacheTTL,
		repositories.NewRedisCacheRepository(redisClient), logger.Named("exchangerate"))
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	loggers := &routes.Loggers{
		Main:       logger,
		Auth:       logger.Named("auth"),
		Order:      logger.Named("order"),
		MasterData: logger.Named("masterdata"),
	}
	routes.InitRouter(e, routes.Deps{
		DB:        dbConn,
		Redis:     redisClient,
		JWT:       jwtSvc,
		Publisher: bus,
		Rates:     rates,
		Config:    cfg,
	}, loggers)

	// 6. serve
	serveErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("server started", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	if err := waitForShutdown(quit, serveErr); err != nil {
		logger.Error("server failed", zap.Error(err))
	}

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	bus.Wait()
}

// waitForShutdown blocks until a signal arrives or the server stops on its
// own. The server error is returned so deferred closers still run.
func waitForShutdown(quit <-chan os.Signal, serveErr <-chan error) error {
	select {
	case <-quit:
		return nil
	case err := <-serveErr:
		return err
	}
}
