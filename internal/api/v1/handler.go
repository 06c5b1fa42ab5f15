package v1

import (
	"errors"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/api/validator"
	"github.com/Behyna/sms-services/autoresponder/internal/constants"
	"github.com/Behyna/sms-services/autoresponder/internal/metrics"
	"github.com/Behyna/sms-services/autoresponder/internal/service"
	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"github.com/Behyna/sms-services/autoresponder/pkg/twiml"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderTrackID = "X-Track-Id"

type Handler struct {
	logger     *zap.Logger
	workflow   service.MessageWorkflowService
	send       service.SendService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
}

func NewHandler(logger *zap.Logger, workflow service.MessageWorkflowService, send service.SendService,
	XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		workflow:   workflow,
		send:       send,
		XValidator: XValidator,
		metrics:    metrics,
	}
}

// Verify answers the webhook verification handshake.
func (h *Handler) Verify(c *fiber.Ctx) error {
	if challenge := c.Query(constants.ChallengeParam); challenge != "" {
		return c.SendString(challenge)
	}
	return c.SendString(constants.WebhookReady)
}

func (h *Handler) Webhook(c *fiber.Ctx) error {
	return h.handleInbound(c, constants.EndpointWebhook)
}

// RootWebhook accepts callbacks that were configured against "/" instead of
// "/webhook".
func (h *Handler) RootWebhook(c *fiber.Ctx) error {
	return h.handleInbound(c, constants.EndpointRoot)
}

func (h *Handler) handleInbound(c *fiber.Ctx, endpoint string) error {
	// From becomes a session key that outlives the request buffer.
	request := WebhookRequest{
		From:       utils.CopyString(twilio.StripScheme(c.FormValue(constants.FormFieldFrom))),
		Body:       c.FormValue(constants.FormFieldBody),
		MessageSID: c.FormValue(constants.FormFieldSID),
	}

	if errs := h.XValidator.Validate(request); len(errs) > 0 {
		h.logger.Warn("Missing webhook data",
			zap.String("endpoint", endpoint),
			zap.String("from", request.From),
			zap.Int("bodyLength", len(request.Body)))
		return c.Status(fiber.StatusBadRequest).SendString(constants.ErrMsgMissingWebhookData)
	}

	trackID := uuid.NewString()
	c.Set(HeaderTrackID, trackID)
	h.metrics.RecordInbound(endpoint)

	reply := h.workflow.HandleInbound(c.UserContext(), service.InboundMessageCommand{
		TrackID:    trackID,
		From:       request.From,
		Body:       request.Body,
		MessageSID: request.MessageSID,
		Endpoint:   endpoint,
	})

	response := twiml.NewMessagingResponse()
	if reply.Suppressed {
		h.metrics.RecordDuplicate()
	} else {
		h.metrics.RecordReply(string(reply.Category))
		response.Message(reply.Text)
	}

	body, err := response.Marshal()
	if err != nil {
		h.logger.Error("Failed to render reply", zap.Error(err), zap.String("trackID", trackID))
		return err
	}

	c.Set(fiber.HeaderContentType, twiml.ContentType)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *Handler) SendMessage(c *fiber.Ctx) error {
	var request SendMessageRequest

	if errs := h.XValidator.Validator(&request, "send_message", c); len(errs) > 0 {
		h.logger.Warn("Invalid send request",
			zap.String("phone", request.Phone),
			zap.Int("errors", len(errs)))
		return service.NewServiceError(constants.ErrCodeMissingFields, errors.New(constants.ErrMsgMissingFields))
	}

	trackID := uuid.NewString()
	c.Set(HeaderTrackID, trackID)

	start := time.Now()
	resp, err := h.send.SendMessage(c.UserContext(), service.SendMessageCommand{
		TrackID: trackID,
		To:      request.Phone,
		Text:    request.Message,
	})
	if err != nil {
		h.metrics.RecordSend("failed", time.Since(start))
		return err
	}
	h.metrics.RecordSend("submitted", time.Since(start))

	h.logger.Info("Message sent",
		zap.String("trackID", trackID),
		zap.String("to", request.Phone),
		zap.String("sid", resp.SID))

	return c.JSON(SendMessageResponse{Success: true, SID: resp.SID})
}
