package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pharma-order-system/pkg/utils"
)

// Pinger is anything whose liveness can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db     Pinger
	cache  Pinger
	logger *zap.Logger
}

func NewHealthController(db Pinger, cache Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, cache: cache, logger: logger}
}

func (c *HealthController) Check(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), 3*time.Second)
	defer cancel()

	status := map[string]string{"database": "ok", "cache": "ok"}
	healthy := true
	if err := c.db.Ping(reqCtx); err != nil {
		c.logger.Warn("health: database ping failed", zap.Error(err))
		status["database"] = err.Error()
		healthy = false
	}
	if err := c.cache.Ping(reqCtx); err != nil {
		c.logger.Warn("health: cache ping failed", zap.Error(err))
		status["cache"] = err.Error()
		healthy = false
	}

	if !healthy {
		return ctx.JSON(http.StatusServiceUnavailable, utils.HTTPResponse{Status: false, Message: "Unhealthy", Body: status})
	}
	return utils.SuccessResponse(ctx, status, "Healthy", http.StatusOK)
}
