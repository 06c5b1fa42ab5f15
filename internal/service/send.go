package service

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/autoresponder/internal/constants"
	"github.com/Behyna/sms-services/autoresponder/internal/model"
	"github.com/Behyna/sms-services/autoresponder/internal/repository"
	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"go.uber.org/zap"
)

type SendService interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (SendMessageResponse, error)
}

type send struct {
	provider ProviderService
	journal  journal
	logger   *zap.Logger
}

func NewSendService(provider ProviderService, messageRepo repository.MessageRepository, logger *zap.Logger) SendService {
	return &send{provider: provider, journal: journal{repo: messageRepo, logger: logger}, logger: logger}
}

// SendMessage makes one dispatch attempt. Every provider failure is reported
// as PROVIDER_ERROR carrying the provider's description.
func (s *send) SendMessage(ctx context.Context, cmd SendMessageCommand) (SendMessageResponse, error) {
	to := twilio.StripScheme(cmd.To)
	if to == "" || cmd.Text == "" {
		return SendMessageResponse{}, NewServiceError(constants.ErrCodeMissingFields,
			errors.New(constants.ErrMsgMissingFields))
	}

	entry := &model.Message{
		TrackID:   cmd.TrackID,
		Direction: model.MessageDirectionOutbound,
		Address:   to,
		Body:      cmd.Text,
	}

	response, err := s.provider.Send(ctx, to, cmd.Text)
	if err != nil {
		s.logger.Error("Failed to send message",
			zap.Error(err),
			zap.String("trackID", cmd.TrackID),
			zap.String("to", to))

		entry.Status = model.MessageStatusFailed
		entry.LastError = stringPtr(err.Error())
		s.journal.record(ctx, entry)

		return SendMessageResponse{}, NewServiceError(constants.ErrCodeProviderError, err)
	}

	entry.Status = model.MessageStatusSubmitted
	entry.ProviderMsgID = stringPtr(response.SID)
	s.journal.record(ctx, entry)

	return SendMessageResponse{SID: response.SID, Status: response.Status}, nil
}
