package api

import (
	"github.com/Behyna/sms-services/autoresponder/internal/api/v1"
	"github.com/Behyna/sms-services/autoresponder/internal/constants"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers every endpoint. /metrics is only exposed when
// registry is non-nil.
func SetupRoutes(app *fiber.App, handler *Handler, v1Handler *v1.Handler, registry *prometheus.Registry) {
	app.Get("/ping", handler.Pong)
	app.Get(constants.PathHealth, handler.Health)

	app.Get(constants.PathRoot, handler.Status)
	app.Post(constants.PathRoot, v1Handler.RootWebhook)

	app.Get(constants.PathWebhook, v1Handler.Verify)
	app.Post(constants.PathWebhook, v1Handler.Webhook)

	app.Post(constants.PathSend, v1Handler.SendMessage)

	if registry != nil {
		app.Get(constants.PathMetrics, adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
}
