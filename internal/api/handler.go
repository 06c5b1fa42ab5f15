package api

import (
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/constants"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the service-level endpoints that do not touch messages.
type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Message: constants.ServiceName,
		Status:  constants.StatusActive,
		Webhook: constants.WebhookHint,
		Test:    constants.TestHint,
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    constants.StatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Endpoints: Endpoints{
			Webhook:     constants.PathWebhook,
			SendMessage: constants.PathSend,
			Health:      constants.PathHealth,
		},
	})
}
