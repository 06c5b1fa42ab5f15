package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/api"
	"github.com/Behyna/sms-services/autoresponder/internal/api/v1"
	"github.com/Behyna/sms-services/autoresponder/internal/api/validator"
	"github.com/Behyna/sms-services/autoresponder/internal/config"
	"github.com/Behyna/sms-services/autoresponder/internal/database"
	"github.com/Behyna/sms-services/autoresponder/internal/metrics"
	"github.com/Behyna/sms-services/autoresponder/internal/service"
	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"github.com/Behyna/sms-services/autoresponder/pkg/httpclient"
	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewRegistry,
			metrics.NewMetrics,
			NewSessionStore,
			NewCatalog,
			NewTwilioProvider,
			NewXValidator,
			database.NewMessageRepository,

			service.NewResponderService,
			service.NewMessageWorkflowService,
			service.NewProviderService,
			service.NewSendService,

			api.NewApp,
			api.NewHandler,
			v1.NewHandler,
			metrics.NewCollector,
		),
		fx.Invoke(runCollector, startServer),
	).Run()
}

func startServer(app *fiber.App, handler *api.Handler, v1Handler *v1.Handler, registry *prometheus.Registry,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle,
) {
	if !cfg.Twilio.Configured() {
		logger.Warn("Twilio credentials missing, outbound sends will fail",
			zap.Bool("accountSID", cfg.Twilio.AccountSID != ""),
			zap.Bool("authToken", cfg.Twilio.AuthToken != ""),
			zap.Bool("whatsappNumber", cfg.Twilio.WhatsAppNumber != ""))
	}

	if !cfg.Metrics.Enable {
		registry = nil
	}
	api.SetupRoutes(app, handler, v1Handler, registry)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting server", zap.String("address", cfg.API.Address()))
				if err := app.Listen(cfg.API.Address()); err != nil {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down server")
			return app.ShutdownWithContext(ctx)
		},
	})
}

func runCollector(collector *metrics.Collector, cfg *config.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(cfg.Metrics.CollectInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}

func NewSessionStore(cfg *config.Config) *session.Store {
	return session.NewStore(cfg.Session, time.Now())
}

func NewCatalog(cfg *config.Config) *service.Catalog {
	return service.NewCatalog(cfg.Replies)
}

func NewTwilioProvider(cfg *config.Config) twilio.Provider {
	client := httpclient.NewHTTPClient(cfg.Twilio.Timeout)
	return twilio.NewProvider(cfg.Twilio, client)
}

func NewXValidator(m *metrics.Metrics) validator.IXValidator {
	return validator.NewXValidator(playground.New(), m)
}
