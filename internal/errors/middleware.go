package errors

import (
	"errors"

	"github.com/Behyna/sms-services/autoresponder/internal/constants"
	"github.com/Behyna/sms-services/autoresponder/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(Response{Error: fiberErr.Message})
		}

		logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))

		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Error: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

// handleServiceError answers a provider failure with the provider's own
// description and every other code with its fixed message.
func handleServiceError(c *fiber.Ctx, err service.Error) error {
	status := constants.GetHTTPStatus(err.Code)

	message := constants.GetErrorMessage(err.Code)
	if err.Code == constants.ErrCodeProviderError && err.Cause != nil {
		message = err.Cause.Error()
	}

	return c.Status(status).JSON(Response{Error: message})
}
