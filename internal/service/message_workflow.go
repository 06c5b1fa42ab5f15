package service

import (
	"context"

	"github.com/Behyna/sms-services/autoresponder/internal/model"
	"github.com/Behyna/sms-services/autoresponder/internal/repository"
	"go.uber.org/zap"
)

const previewLength = 100

type MessageWorkflowService interface {
	HandleInbound(ctx context.Context, cmd InboundMessageCommand) Reply
}

type messageWorkflow struct {
	responder ResponderService
	journal   journal
	logger    *zap.Logger
}

func NewMessageWorkflowService(responder ResponderService, messageRepo repository.MessageRepository,
	logger *zap.Logger) MessageWorkflowService {
	return &messageWorkflow{
		responder: responder,
		journal:   journal{repo: messageRepo, logger: logger},
		logger:    logger,
	}
}

func (m *messageWorkflow) HandleInbound(ctx context.Context, cmd InboundMessageCommand) Reply {
	m.logger.Info("Incoming message",
		zap.String("trackID", cmd.TrackID),
		zap.String("endpoint", cmd.Endpoint),
		zap.String("from", cmd.From),
		zap.String("body", cmd.Body))

	reply := m.responder.Respond(cmd.Body, cmd.From)

	entry := &model.Message{
		TrackID:       cmd.TrackID,
		Direction:     model.MessageDirectionInbound,
		Address:       cmd.From,
		Body:          cmd.Body,
		Category:      stringPtr(string(reply.Category)),
		Status:        model.MessageStatusReplied,
		ProviderMsgID: stringPtr(cmd.MessageSID),
	}
	if reply.Suppressed {
		entry.Status = model.MessageStatusSuppressed
	}
	m.journal.record(ctx, entry)

	if reply.Suppressed {
		m.logger.Info("Duplicate, sending empty response",
			zap.String("trackID", cmd.TrackID),
			zap.String("from", cmd.From))
		return reply
	}

	m.logger.Info("Replying to message",
		zap.String("trackID", cmd.TrackID),
		zap.String("from", cmd.From),
		zap.String("category", string(reply.Category)),
		zap.String("preview", preview(reply.Text, previewLength)))

	return reply
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
