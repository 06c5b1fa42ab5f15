package api

import (
	"github.com/Behyna/sms-services/autoresponder/internal/config"
	apperrors "github.com/Behyna/sms-services/autoresponder/internal/errors"
	"github.com/Behyna/sms-services/autoresponder/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func NewApp(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "autoresponder",
		Immutable:             true,
		ReadTimeout:           cfg.API.ReadTimeout,
		WriteTimeout:          cfg.API.WriteTimeout,
		ErrorHandler:          apperrors.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if cfg.Metrics.Enable {
		app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	}

	return app
}
